package notes_test

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/mudler/LocalNotes/core/notes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		tmpDir  string
		service *notes.Service
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "notes_service_test_*")
		Expect(err).ToNot(HaveOccurred())
		store, err := notes.NewStore(filepath.Join(tmpDir, "notes.json"))
		Expect(err).ToNot(HaveOccurred())
		service = notes.NewService(store)
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("Create", func() {
		It("normalizes the draft and stamps both timestamps", func() {
			note, err := service.Create(notes.Draft{
				Title:    "  Groceries  ",
				Text:     "  milk and eggs  ",
				Category: "Work",
				Color:    "#00ff00",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(note.ID).ToNot(BeZero())
			Expect(note.Title).To(Equal("Groceries"))
			Expect(note.Text).To(Equal("milk and eggs"))
			Expect(note.Category).To(Equal(notes.CategoryWork))
			Expect(note.Color).To(Equal("#00ff00"))
			Expect(note.CreatedAt).To(Equal(note.UpdatedAt))
			Expect(note.CreatedAt.Location()).To(Equal(time.UTC))
		})

		It("applies defaults to an empty draft", func() {
			note, err := service.Create(notes.Draft{})
			Expect(err).ToNot(HaveOccurred())
			Expect(note.Title).To(Equal(notes.DefaultTitle))
			Expect(note.Text).To(BeEmpty())
			Expect(note.Category).To(Equal(notes.CategoryGeneral))
			Expect(note.Color).To(Equal(notes.DefaultColor))
		})

		It("folds unknown categories into general", func() {
			note, err := service.Create(notes.Draft{Category: "groceries"})
			Expect(err).ToNot(HaveOccurred())
			Expect(note.Category).To(Equal(notes.CategoryGeneral))
		})

		It("assigns distinct ids to back-to-back creates", func() {
			first, err := service.Create(notes.Draft{Title: "first"})
			Expect(err).ToNot(HaveOccurred())
			second, err := service.Create(notes.Draft{Title: "second"})
			Expect(err).ToNot(HaveOccurred())
			Expect(second.ID).ToNot(Equal(first.ID))
		})
	})

	Describe("Get", func() {
		It("returns a stored note by id", func() {
			created, err := service.Create(notes.Draft{Title: "findable"})
			Expect(err).ToNot(HaveOccurred())

			note, err := service.Get(created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(note.Title).To(Equal("findable"))
		})

		It("returns ErrNotFound for an unknown id", func() {
			_, err := service.Get(12345)
			Expect(errors.Is(err, notes.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("List", func() {
		It("returns an empty collection when nothing is stored", func() {
			collection, err := service.List()
			Expect(err).ToNot(HaveOccurred())
			Expect(collection).To(BeEmpty())
		})

		It("returns notes in creation order", func() {
			first, err := service.Create(notes.Draft{Title: "one"})
			Expect(err).ToNot(HaveOccurred())
			second, err := service.Create(notes.Draft{Title: "two"})
			Expect(err).ToNot(HaveOccurred())

			collection, err := service.List()
			Expect(err).ToNot(HaveOccurred())
			Expect(collection).To(HaveLen(2))
			Expect(collection[0].ID).To(Equal(first.ID))
			Expect(collection[1].ID).To(Equal(second.ID))
		})
	})

	Describe("Update", func() {
		It("applies only the fields present in the patch", func() {
			created, err := service.Create(notes.Draft{Title: "before", Text: "body", Category: "work", Color: "#111111"})
			Expect(err).ToNot(HaveOccurred())

			title := "after"
			updated, err := service.Update(created.ID, notes.Patch{Title: &title})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Title).To(Equal("after"))
			Expect(updated.Text).To(Equal("body"))
			Expect(updated.Category).To(Equal(notes.CategoryWork))
			Expect(updated.Color).To(Equal("#111111"))
		})

		It("treats a pointer to an empty string as a real value", func() {
			created, err := service.Create(notes.Draft{Title: "keep", Text: "clear me"})
			Expect(err).ToNot(HaveOccurred())

			empty := ""
			updated, err := service.Update(created.ID, notes.Patch{Text: &empty})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Text).To(BeEmpty())
			Expect(updated.Title).To(Equal("keep"))
		})

		It("normalizes patched titles and categories", func() {
			created, err := service.Create(notes.Draft{Title: "original"})
			Expect(err).ToNot(HaveOccurred())

			blank := "   "
			category := "IDEAS"
			updated, err := service.Update(created.ID, notes.Patch{Title: &blank, Category: &category})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Title).To(Equal(notes.DefaultTitle))
			Expect(updated.Category).To(Equal(notes.CategoryIdeas))
		})

		It("refreshes updatedAt even for an empty patch", func() {
			created, err := service.Create(notes.Draft{Title: "touch"})
			Expect(err).ToNot(HaveOccurred())

			time.Sleep(5 * time.Millisecond)
			updated, err := service.Update(created.ID, notes.Patch{})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.UpdatedAt).To(BeTemporally(">", created.UpdatedAt))
			Expect(updated.CreatedAt).To(BeTemporally("==", created.CreatedAt))
		})

		It("returns ErrNotFound for an unknown id", func() {
			title := "nobody"
			_, err := service.Update(424242, notes.Patch{Title: &title})
			Expect(errors.Is(err, notes.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("removes the note and leaves the rest", func() {
			first, err := service.Create(notes.Draft{Title: "stays"})
			Expect(err).ToNot(HaveOccurred())
			second, err := service.Create(notes.Draft{Title: "goes"})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.Delete(second.ID)).To(Succeed())

			_, err = service.Get(second.ID)
			Expect(errors.Is(err, notes.ErrNotFound)).To(BeTrue())

			collection, err := service.List()
			Expect(err).ToNot(HaveOccurred())
			Expect(collection).To(HaveLen(1))
			Expect(collection[0].ID).To(Equal(first.ID))
		})

		It("returns ErrNotFound for an unknown id", func() {
			err := service.Delete(999)
			Expect(errors.Is(err, notes.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("Search", func() {
		BeforeEach(func() {
			_, err := service.Create(notes.Draft{Title: "Shopping list", Text: "milk and eggs"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Create(notes.Draft{Title: "Meeting notes", Text: "discussed the Milky Way project"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Create(notes.Draft{Title: "Weekend", Text: "build a birdhouse"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("matches against titles", func() {
			matches, err := service.Search("shopping")
			Expect(err).ToNot(HaveOccurred())
			Expect(matches).To(HaveLen(1))
			Expect(matches[0].Title).To(Equal("Shopping list"))
		})

		It("matches against text case-insensitively", func() {
			matches, err := service.Search("MILK")
			Expect(err).ToNot(HaveOccurred())
			Expect(matches).To(HaveLen(2))
		})

		It("returns every note for the empty query", func() {
			matches, err := service.Search("")
			Expect(err).ToNot(HaveOccurred())
			Expect(matches).To(HaveLen(3))
		})

		It("returns an empty collection when nothing matches", func() {
			matches, err := service.Search("submarine")
			Expect(err).ToNot(HaveOccurred())
			Expect(matches).ToNot(BeNil())
			Expect(matches).To(BeEmpty())
		})
	})

	It("persists across a second service over the same file", func() {
		created, err := service.Create(notes.Draft{Title: "durable", Text: "written to disk"})
		Expect(err).ToNot(HaveOccurred())

		store, err := notes.NewStore(filepath.Join(tmpDir, "notes.json"))
		Expect(err).ToNot(HaveOccurred())
		reloaded, err := notes.NewService(store).Get(created.ID)
		Expect(err).ToNot(HaveOccurred())
		Expect(reloaded.Title).To(Equal("durable"))
		Expect(reloaded.Text).To(Equal("written to disk"))
	})
})
