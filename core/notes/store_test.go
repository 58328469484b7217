package notes_test

import (
	"os"
	"path/filepath"

	"github.com/mudler/LocalNotes/core/notes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		tmpDir   string
		filePath string
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "notes_store_test_*")
		Expect(err).ToNot(HaveOccurred())
		filePath = filepath.Join(tmpDir, "notes.json")
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("creates the backing file as an empty collection", func() {
		_, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())

		data, err := os.ReadFile(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(Equal("[]"))
	})

	It("leaves an existing file untouched on open", func() {
		Expect(os.WriteFile(filePath, []byte(`[{"id":1,"title":"kept"}]`), 0644)).To(Succeed())

		store, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())

		collection, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(collection).To(HaveLen(1))
		Expect(collection[0].Title).To(Equal("kept"))
	})

	It("loads an empty collection from a missing file", func() {
		store, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(os.Remove(filePath)).To(Succeed())

		collection, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(collection).ToNot(BeNil())
		Expect(collection).To(BeEmpty())
	})

	It("loads an empty collection from an empty file", func() {
		store, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(os.WriteFile(filePath, []byte{}, 0644)).To(Succeed())

		collection, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(collection).ToNot(BeNil())
		Expect(collection).To(BeEmpty())
	})

	It("round-trips a collection through save and load", func() {
		store, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())

		saved := []*notes.Note{
			{ID: 1, Title: "first", Text: "alpha", Category: notes.CategoryWork, Color: "#ff0000"},
			{ID: 2, Title: "second", Text: "beta", Category: notes.CategoryGeneral, Color: notes.DefaultColor},
		}
		Expect(store.Save(saved)).To(Succeed())

		loaded, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(loaded).To(HaveLen(2))
		Expect(loaded[0].Title).To(Equal("first"))
		Expect(loaded[0].Text).To(Equal("alpha"))
		Expect(loaded[1].Category).To(Equal(notes.CategoryGeneral))
		Expect(loaded[1].Color).To(Equal(notes.DefaultColor))
	})

	It("pretty-prints the stored JSON", func() {
		store, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(store.Save([]*notes.Note{{ID: 7, Title: "indent"}})).To(Succeed())

		data, err := os.ReadFile(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("\n  {"))
		Expect(string(data)).To(ContainSubstring(`"title": "indent"`))
	})

	It("fails to load a corrupt file", func() {
		store, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(os.WriteFile(filePath, []byte("{not json"), 0644)).To(Succeed())

		_, err = store.Load()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to parse store file"))
	})

	It("creates missing parent directories on save", func() {
		nested := filepath.Join(tmpDir, "deeper", "still", "notes.json")
		store, err := notes.NewStore(nested)
		Expect(err).ToNot(HaveOccurred())

		collection, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(collection).To(BeEmpty())
	})

	It("saves to a bare relative filename", func() {
		cwd, err := os.Getwd()
		Expect(err).ToNot(HaveOccurred())
		Expect(os.Chdir(tmpDir)).To(Succeed())
		defer func() { _ = os.Chdir(cwd) }()

		store, err := notes.NewStore("notes.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(store.Save([]*notes.Note{{ID: 1, Title: "here"}})).To(Succeed())

		_, err = os.Stat(filepath.Join(tmpDir, "notes.json"))
		Expect(err).ToNot(HaveOccurred())

		collection, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(collection).To(HaveLen(1))
		Expect(collection[0].Title).To(Equal("here"))
	})

	It("reports the backing file path", func() {
		store, err := notes.NewStore(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(store.Path()).To(Equal(filePath))
	})
})
