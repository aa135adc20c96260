package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

var (
	wdtWait    time.Duration
	wdtOutputs []string
)

func init() {
	wdtSetCmd.Flags().DurationVar(&wdtWait, "wait", 10*time.Second, "timeout before the watchdog fires (1s-1000s, 100ms steps)")
	wdtSetCmd.Flags().StringSliceVar(&wdtOutputs, "outputs", nil, "output states the timer forces, e.g. 1,0,0,1")

	wdtCmd.AddCommand(wdtStatusCmd, wdtEnableCmd, wdtDisableCmd, wdtSetCmd)
	rootCmd.AddCommand(wdtCmd)
}

var wdtCmd = &cobra.Command{
	Use:   "wdt",
	Short: "Communication watchdog timer",
}

var wdtStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the watchdog configuration",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		w, err := cl.Watchdog()
		if err != nil {
			return err
		}
		fmt.Printf("watchdog: %s, wait %s\n", onOff(w.Enabled), w.Wait)
		for i, on := range w.Outputs {
			fmt.Printf("OUT%d on timeout: %s\n", i, onOff(on))
		}
		return nil
	}),
}

var wdtEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Arm the watchdog",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		return cl.EnableWatchdog()
	}),
}

var wdtDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disarm the watchdog",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		return cl.DisableWatchdog()
	}),
}

var wdtSetCmd = &cobra.Command{
	Use:   "set --wait 30s --outputs 1,0,0,1",
	Short: "Write the watchdog wait time and output states",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		w := ema8314.Watchdog{Wait: wdtWait}
		if len(wdtOutputs) > 0 {
			if len(wdtOutputs) != 4 {
				return fmt.Errorf("--outputs needs exactly 4 states, got %d", len(wdtOutputs))
			}
			states, err := parseStates(wdtOutputs)
			if err != nil {
				return err
			}
			w.Outputs = states
		}
		return cl.SetWatchdog(w)
	}),
}
