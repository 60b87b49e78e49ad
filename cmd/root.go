package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	rootCmd = &cobra.Command{
		Use:   "seatsim",
		Short: "Seatsim - virtual input and display broker",
		Long: `Seatsim hosts virtual human-interface devices (keyboard, mouse,
touchscreen) and a dual-output virtual display for end-to-end testing of
windowing clients. An external test driver scripts it over a small binary
protocol on a local socket; synthesized events reach client applications as
if they came from real hardware.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(driveCmd)
}
