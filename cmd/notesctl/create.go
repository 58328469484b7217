package main

import (
	"fmt"

	"github.com/spf13/cobra"

	localnotes "github.com/mudler/LocalNotes/pkg/client"
)

var (
	createTitle    string
	createText     string
	createCategory string
	createColor    string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long:  `Create a note. Omitted fields take the server defaults: "Untitled", category "general", color "#ffffff".`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		note, err := newClient().CreateNote(localnotes.NoteDraft{
			Title:    createTitle,
			Text:     createText,
			Category: createCategory,
			Color:    createColor,
		})
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Note created: %d\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&createText, "text", "", "Note text")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Note category (general, personal, work, ideas)")
	createCmd.Flags().StringVar(&createColor, "color", "", "Note color as a hex string")
}
