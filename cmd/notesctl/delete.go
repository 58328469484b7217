package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid note id", err)
		}

		if err := newClient().DeleteNote(id); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note deleted: %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
