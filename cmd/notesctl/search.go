package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by title or text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		matches, err := newClient().SearchNotes(args[0])
		if err != nil {
			fatal("Failed to search notes", err)
		}

		if searchJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(matches); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range matches {
			fmt.Printf("%d  [%s]  %s\n", note.ID, note.Category, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
