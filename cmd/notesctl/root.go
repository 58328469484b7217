package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	localnotes "github.com/mudler/LocalNotes/pkg/client"
)

var (
	serverURL string
	timeout   time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Command-line client for a LocalNotes server",
	Long: `notesctl manages notes on a running LocalNotes server over its HTTP API,
and can ask the notes assistant questions from the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newClient() *localnotes.Client {
	return localnotes.NewClient(serverURL, timeout)
}

func defaultServer() string {
	if v := os.Getenv("LOCALNOTES_SERVER"); v != "" {
		return v
	}
	return "http://localhost:3000"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer(), "LocalNotes server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP request timeout")
}
