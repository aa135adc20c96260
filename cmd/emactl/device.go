package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marsmathis/ema8314"
)

func init() {
	deviceCmd.AddCommand(
		deviceInfoCmd,
		deviceRebootCmd,
		deviceSetIPCmd,
		deviceSetPortCmd,
		deviceSetPasswordCmd,
		deviceResetPasswordCmd,
	)
	rootCmd.AddCommand(deviceCmd)
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Device administration",
}

var deviceInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show firmware version",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		v, err := cl.FirmwareVersion()
		if err != nil {
			return err
		}
		fmt.Printf("firmware: %s\n", v)
		return nil
	}),
}

var deviceRebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot the module",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		return cl.Reboot()
	}),
}

var deviceSetIPCmd = &cobra.Command{
	Use:   "set-ip <ipv4>",
	Short: "Change the module's IPv4 address",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		ip := net.ParseIP(args[0])
		if ip == nil {
			return fmt.Errorf("invalid IP %q", args[0])
		}
		if err := cl.SetIP(ip); err != nil {
			return err
		}
		fmt.Println("address changed; reconnect with the new address")
		return nil
	}),
}

var deviceSetPortCmd = &cobra.Command{
	Use:   "set-port <port>",
	Short: "Change the UDP port the module listens on",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		p, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid port %q", args[0])
		}
		if err := cl.SetPort(uint16(p)); err != nil {
			return err
		}
		fmt.Println("port changed; reconnect with the new port")
		return nil
	}),
}

var deviceSetPasswordCmd = &cobra.Command{
	Use:   "set-password <password>",
	Short: "Change the device password (up to 8 ASCII bytes)",
	Args:  cobra.ExactArgs(1),
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		return cl.SetPassword(args[0])
	}),
}

var deviceResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Restore the factory password",
	Args:  cobra.NoArgs,
	RunE: withClient(func(cl *ema8314.Client, args []string) error {
		return cl.ResetPassword()
	}),
}
