package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

var (
	limitLow  float32
	limitHigh float32
	limitUnit string
)

func init() {
	limitsSetCmd.Flags().Float32Var(&limitLow, "low", 0, "low threshold")
	limitsSetCmd.Flags().Float32Var(&limitHigh, "high", 0, "high threshold")
	limitsSetCmd.Flags().StringVar(&limitUnit, "unit", "C", "unit, C or F")
	limitsSetCmd.MarkFlagRequired("low")
	limitsSetCmd.MarkFlagRequired("high")

	limitsCmd.AddCommand(limitsGetCmd, limitsSetCmd)
	rootCmd.AddCommand(limitsCmd)
}

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Read or write comparison thresholds",
}

var limitsGetCmd = &cobra.Command{
	Use:   "get [channel]",
	Short: "Show thresholds (all channels, or one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		if len(args) == 1 {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			l, err := cl.Limits(ch)
			if err != nil {
				return err
			}
			fmt.Printf("channel %d: %.1f to %.1f °%s\n", ch, l.Low, l.High, l.Unit)
			return nil
		}
		limits, err := cl.AllLimits()
		if err != nil {
			return err
		}
		for i, l := range limits {
			fmt.Printf("channel %d: %.1f to %.1f °%s\n", i, l.Low, l.High, l.Unit)
		}
		return nil
	}),
}

var limitsSetCmd = &cobra.Command{
	Use:   "set <channel> --low L --high H [--unit C|F]",
	Short: "Write the thresholds of one channel",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		unit, err := parseUnit(limitUnit)
		if err != nil {
			return err
		}
		return cl.SetLimits(ch, ema8314.Limits{Low: limitLow, High: limitHigh, Unit: unit})
	}),
}

func parseUnit(s string) (ema8314.Unit, error) {
	switch s {
	case "C", "c":
		return ema8314.Celsius, nil
	case "F", "f":
		return ema8314.Fahrenheit, nil
	}
	return 0, fmt.Errorf("unit must be C or F, got %q", s)
}
