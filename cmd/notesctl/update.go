package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	localnotes "github.com/mudler/LocalNotes/pkg/client"
)

var (
	updateTitle    string
	updateText     string
	updateCategory string
	updateColor    string
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a note",
	Long:  `Update the given fields of a note. Fields not passed as flags are left unchanged.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid note id", err)
		}

		// Only flags the caller actually set become part of the patch, so an
		// empty --title is a real value while an absent one is an omission.
		patch := localnotes.NotePatch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("text") {
			patch.Text = &updateText
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &updateCategory
		}
		if cmd.Flags().Changed("color") {
			patch.Color = &updateColor
		}

		if patch.Title == nil && patch.Text == nil && patch.Category == nil && patch.Color == nil {
			fmt.Println("Error: at least one of --title, --text, --category, --color is required")
			cmd.Usage()
			os.Exit(1)
		}

		note, err := newClient().UpdateNote(id, patch)
		if err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Note updated: %d\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateText, "text", "", "New text")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "New category (general, personal, work, ideas)")
	updateCmd.Flags().StringVar(&updateColor, "color", "", "New color as a hex string")
}
