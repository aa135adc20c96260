// emactl exposes every EMA-8314 operation on the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

var (
	deviceAddr string
	localAddr  string
	password   string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "emactl",
	Short:         "Control an EMA-8314 Ethernet temperature I/O module",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&deviceAddr, "device", "d", "", "device host:port (required)")
	pf.StringVar(&localAddr, "local", "", "local host:port to bind")
	pf.StringVarP(&password, "password", "p", "", "device password")
	pf.DurationVar(&timeout, "timeout", ema8314.DefaultTimeout, "reply timeout")
}

// dial opens the client for one command invocation.
func dial() (*ema8314.Client, error) {
	if deviceAddr == "" {
		return nil, fmt.Errorf("--device is required")
	}
	return ema8314.Dial(deviceAddr, ema8314.Config{
		LocalAddr: localAddr,
		Password:  password,
		Timeout:   timeout,
	})
}

// withClient wraps a RunE body with dial/close.
func withClient(f func(cl *ema8314.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cl, err := dial()
		if err != nil {
			return err
		}
		defer cl.Close()
		return f(cl, args)
	}
}

// parseChannel turns a positional argument into a Channel.
func parseChannel(arg string) (ema8314.Channel, error) {
	var ch int
	if _, err := fmt.Sscanf(arg, "%d", &ch); err != nil || ch < 0 || ch > 3 {
		return 0, fmt.Errorf("channel must be 0-3, got %q", arg)
	}
	return ema8314.Channel(ch), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
