package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

func init() {
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:   "read [channel]",
	Short: "Read temperatures (all channels, or one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		if len(args) == 1 {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			t, err := cl.Temperature(ch)
			if err != nil {
				return err
			}
			fmt.Printf("channel %d: %s\n", ch, t)
			return nil
		}

		temps, err := cl.Temperatures()
		if err != nil {
			return err
		}
		broken, err := cl.SensorStatus()
		if err != nil {
			return err
		}
		for i, t := range temps {
			if broken[i] {
				fmt.Printf("channel %d: NaN (sensor broken)\n", i)
				continue
			}
			fmt.Printf("channel %d: %s\n", i, t)
		}
		return nil
	}),
}
