package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		collection, err := newClient().ListNotes()
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(collection); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range collection {
			fmt.Printf("%d  [%s]  %s\n", note.ID, note.Category, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
