package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

func init() {
	sensorCmd.AddCommand(sensorGetCmd, sensorSetCmd, sensorStatusCmd)
	rootCmd.AddCommand(sensorCmd)
}

var sensorCmd = &cobra.Command{
	Use:   "sensor",
	Short: "Probe types and probe health",
}

var sensorGetCmd = &cobra.Command{
	Use:   "get [channel]",
	Short: "Show the probe type (all channels, or one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		if len(args) == 1 {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			st, err := cl.SensorType(ch)
			if err != nil {
				return err
			}
			fmt.Printf("channel %d: %s\n", ch, st)
			return nil
		}
		types, err := cl.SensorTypes()
		if err != nil {
			return err
		}
		for i, st := range types {
			fmt.Printf("channel %d: %s\n", i, st)
		}
		return nil
	}),
}

var sensorSetCmd = &cobra.Command{
	Use:   "set <channel> <Pt-100|Pt-1000>",
	Short: "Write the probe type of one channel",
	Args:  cobra.ExactArgs(2),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		var st ema8314.SensorType
		switch args[1] {
		case "Pt-100", "pt-100", "pt100":
			st = ema8314.Pt100
		case "Pt-1000", "pt-1000", "pt1000":
			st = ema8314.Pt1000
		default:
			return fmt.Errorf("sensor type must be Pt-100 or Pt-1000, got %q", args[1])
		}
		return cl.SetSensorType(ch, st)
	}),
}

var sensorStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which probes are broken",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		broken, err := cl.SensorStatus()
		if err != nil {
			return err
		}
		for i, b := range broken {
			state := "connected"
			if b {
				state = "disconnected"
			}
			fmt.Printf("channel %d: %s\n", i, state)
		}
		return nil
	}),
}
