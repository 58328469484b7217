package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask the notes assistant",
	Long: `Ask the notes assistant to read or change your notes in plain language.
Prints the reply by default; --json also shows the tool calls the assistant made.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		message := strings.Join(args, " ")

		result, err := newClient().Ask(message, nil)
		if err != nil {
			fatal("Failed to ask assistant", err)
		}

		if askJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Println(result.Reply)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Output the full result in JSON format")
}
