package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

func init() {
	outputCmd.AddCommand(outputGetCmd, outputSetCmd)
	modeCmd.AddCommand(modeGetCmd, modeSetCmd)
	rootCmd.AddCommand(outputCmd, modeCmd)
}

var outputCmd = &cobra.Command{
	Use:   "output",
	Short: "Read or switch the four outputs",
}

var outputGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show output states",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		states, err := cl.Outputs()
		if err != nil {
			return err
		}
		for i, on := range states {
			fmt.Printf("OUT%d: %s\n", i, onOff(on))
		}
		return nil
	}),
}

var outputSetCmd = &cobra.Command{
	Use:   "set <0|1> <0|1> <0|1> <0|1>",
	Short: "Switch all four outputs (general purpose mode only)",
	Args:  cobra.ExactArgs(4),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		states, err := parseStates(args)
		if err != nil {
			return err
		}
		return cl.SetOutputs(states)
	}),
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Read or assign output modes",
}

var modeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show output modes",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		modes, err := cl.OutputModes()
		if err != nil {
			return err
		}
		for i, m := range modes {
			fmt.Printf("OUT%d: %s\n", i, m)
		}
		return nil
	}),
}

var modeSetCmd = &cobra.Command{
	Use:   "set <gp|tc> <gp|tc> <gp|tc> <gp|tc>",
	Short: "Assign each output to general purpose (gp) or temperature control (tc)",
	Args:  cobra.ExactArgs(4),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		var modes [4]ema8314.OutputMode
		for i, a := range args {
			switch strings.ToLower(a) {
			case "gp", "0":
				modes[i] = ema8314.GeneralPurpose
			case "tc", "1":
				modes[i] = ema8314.TemperatureControl
			default:
				return fmt.Errorf("mode must be gp or tc, got %q", a)
			}
		}
		return cl.SetOutputModes(modes)
	}),
}

func parseStates(args []string) ([4]bool, error) {
	var states [4]bool
	for i, a := range args {
		switch a {
		case "0", "off":
			states[i] = false
		case "1", "on":
			states[i] = true
		default:
			return states, fmt.Errorf("state must be 0 or 1, got %q", a)
		}
	}
	return states, nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
