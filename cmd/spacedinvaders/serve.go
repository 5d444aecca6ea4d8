package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yawpitch/spacedinvaders/internal/platform/tui"
)

var (
	flagSSHHost     string
	flagSSHPort     int
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cabinet over SSH",
	Long: `Start an SSH server so punters can play remotely.

Every connection gets its own cabinet: attract screen, demo and credited
play. All connections share this server's leaderboard. Remote sessions
run silent; the speaker would be on the wrong machine.

Host key handling:
  - If --keypath is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spacedinvaders/host_key

Examples:
  spacedinvaders serve                          # Listen on :23234
  spacedinvaders serve --port 2222
  spacedinvaders serve --keypath ./my_host_key
  spacedinvaders serve --db ./scores.db

Users can connect with:
  ssh <host> -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHHost, "host", "", "Address to listen on (empty = all interfaces)")
	serveCmd.Flags().IntVar(&flagSSHPort, "port", 23234, "Port to listen on")
	serveCmd.Flags().StringVar(&flagHostKey, "keypath", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     net.JoinHostPort(flagSSHHost, strconv.Itoa(flagSSHPort)),
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving the cabinet on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %d\n", flagSSHPort)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
