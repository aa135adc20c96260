package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

func init() {
	controlCmd.AddCommand(
		controlStatusCmd,
		controlEnableCmd,
		controlDisableCmd,
		controlMaskCmd,
		controlModeCmd,
	)
	rootCmd.AddCommand(controlCmd)
}

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "On-device temperature comparison",
}

var controlStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether comparison is running, plus mask and modes",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		on, err := cl.ControlEnabled()
		if err != nil {
			return err
		}
		fmt.Printf("comparison: %s\n", onOff(on))

		mask, err := cl.ControlMask()
		if err != nil {
			return err
		}
		for i, masked := range mask {
			mode, err := cl.ControlMode(ema8314.Channel(i))
			if err != nil {
				return err
			}
			state := "active"
			if masked {
				state = "masked"
			}
			fmt.Printf("channel %d: %s, %s\n", i, state, mode)
		}
		return nil
	}),
}

var controlEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start comparison",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		return cl.EnableControl()
	}),
}

var controlDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop comparison",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		return cl.DisableControl()
	}),
}

var controlMaskCmd = &cobra.Command{
	Use:   "mask <0|1> <0|1> <0|1> <0|1>",
	Short: "Mask channels out of the comparison (1 = masked)",
	Args:  cobra.ExactArgs(4),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		masked, err := parseStates(args)
		if err != nil {
			return err
		}
		return cl.SetControlMask(masked)
	}),
}

var controlModeCmd = &cobra.Command{
	Use:   "mode <channel> [0-3]",
	Short: "Read or write the comparison mode of one channel",
	Long: `Comparison modes:
  0  output on over the high limit, off under the low limit
  1  output off over the high limit, on under the low limit
  2  output on while the reading is within the limits
  3  output off while the reading is within the limits`,
	Args: cobra.RangeArgs(1, 2),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			mode, err := cl.ControlMode(ch)
			if err != nil {
				return err
			}
			fmt.Printf("channel %d: mode %d (%s)\n", ch, mode, mode)
			return nil
		}
		m, err := strconv.Atoi(args[1])
		if err != nil || m < 0 || m > 3 {
			return fmt.Errorf("mode must be 0-3, got %q", args[1])
		}
		return cl.SetControlMode(ch, ema8314.ControlMode(m))
	}),
}
