package localnotes_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	localnotes "github.com/mudler/LocalNotes/pkg/client"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// recordingServer captures the last request while serving a canned response.
type recordingServer struct {
	*httptest.Server

	method      string
	path        string
	query       string
	contentType string
	body        string
}

func newRecordingServer(status int, response string) *recordingServer {
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.Query().Get("q")
		rs.contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		rs.body = string(data)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))
	return rs
}

var _ = Describe("Client", func() {
	It("applies a default timeout", func() {
		client := localnotes.NewClient("http://localhost:1", 0)
		Expect(client.HTTPClient.Timeout).To(Equal(30 * time.Second))

		client.SetTimeout(time.Minute)
		Expect(client.HTTPClient.Timeout).To(Equal(time.Minute))
	})

	It("lists notes", func() {
		server := newRecordingServer(http.StatusOK, `[{"id":1,"title":"First"},{"id":2,"title":"Second"}]`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		collection, err := client.ListNotes()
		Expect(err).ToNot(HaveOccurred())
		Expect(server.method).To(Equal(http.MethodGet))
		Expect(server.path).To(Equal("/api/notes"))
		Expect(collection).To(HaveLen(2))
		Expect(collection[0].Title).To(Equal("First"))
		Expect(collection[1].ID).To(Equal(int64(2)))
	})

	It("fetches a note by id", func() {
		server := newRecordingServer(http.StatusOK, `{"id":7,"title":"Single","text":"body"}`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		note, err := client.GetNote(7)
		Expect(err).ToNot(HaveOccurred())
		Expect(server.path).To(Equal("/api/notes/7"))
		Expect(note.ID).To(Equal(int64(7)))
		Expect(note.Text).To(Equal("body"))
	})

	It("creates a note", func() {
		server := newRecordingServer(http.StatusCreated, `{"id":3,"title":"Trip","category":"personal"}`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		note, err := client.CreateNote(localnotes.NoteDraft{Title: "Trip", Category: "personal"})
		Expect(err).ToNot(HaveOccurred())
		Expect(server.method).To(Equal(http.MethodPost))
		Expect(server.path).To(Equal("/api/notes"))
		Expect(server.contentType).To(Equal("application/json"))
		Expect(server.body).To(MatchJSON(`{"title":"Trip","category":"personal"}`))
		Expect(note.ID).To(Equal(int64(3)))
	})

	It("sends only the set fields of a patch", func() {
		server := newRecordingServer(http.StatusOK, `{"id":7,"title":"Kept","text":""}`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		empty := ""
		note, err := client.UpdateNote(7, localnotes.NotePatch{Text: &empty})
		Expect(err).ToNot(HaveOccurred())
		Expect(server.method).To(Equal(http.MethodPut))
		Expect(server.path).To(Equal("/api/notes/7"))
		Expect(server.body).To(MatchJSON(`{"text":""}`))
		Expect(note.Text).To(BeEmpty())
	})

	It("deletes a note", func() {
		server := newRecordingServer(http.StatusOK, `{"message":"Note deleted successfully"}`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		Expect(client.DeleteNote(7)).To(Succeed())
		Expect(server.method).To(Equal(http.MethodDelete))
		Expect(server.path).To(Equal("/api/notes/7"))
	})

	It("fails a delete without a confirmation message", func() {
		server := newRecordingServer(http.StatusOK, `{"status":"maybe"}`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		err := client.DeleteNote(7)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to delete note"))
	})

	It("escapes search queries", func() {
		server := newRecordingServer(http.StatusOK, `[]`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		matches, err := client.SearchNotes("milk & cookies")
		Expect(err).ToNot(HaveOccurred())
		Expect(server.path).To(Equal("/api/search"))
		Expect(server.query).To(Equal("milk & cookies"))
		Expect(matches).To(BeEmpty())
	})

	It("surfaces API errors with status and body", func() {
		server := newRecordingServer(http.StatusNotFound, `{"error":"Note not found"}`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		_, err := client.GetNote(424242)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("api error (status 404)"))
		Expect(err.Error()).To(ContainSubstring("Note not found"))
	})

	It("asks the assistant and decodes the action trail", func() {
		server := newRecordingServer(http.StatusOK, `{"reply":"Done.","actions":[{"tool":"create_note","input":{"title":"Trip"},"result":{"id":3}}]}`)
		defer server.Close()
		client := localnotes.NewClient(server.URL, 0)

		result, err := client.Ask("save a trip note", []localnotes.HistoryMessage{
			{Role: "user", Content: "earlier"},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(server.method).To(Equal(http.MethodPost))
		Expect(server.path).To(Equal("/api/agent"))
		Expect(server.body).To(MatchJSON(`{"message":"save a trip note","history":[{"role":"user","content":"earlier"}]}`))
		Expect(result.Reply).To(Equal("Done."))
		Expect(result.Actions).To(HaveLen(1))
		Expect(result.Actions[0].Tool).To(Equal("create_note"))
	})
})
