package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	getJSON bool
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Read a note",
	Long:  `Read a note by its id. Outputs the note text by default, or the full record with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid note id", err)
		}

		note, err := newClient().GetNote(id)
		if err != nil {
			fatal("Failed to read note", err)
		}

		if getJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Println(note.Text)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
}
