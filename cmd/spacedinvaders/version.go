package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, stamped by the linker:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=abc1234 -X main.date=2026-08-25"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("spacedinvaders %s (commit %s, built %s)\n", version, commit, date)
	},
}
