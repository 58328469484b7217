package localnotes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Note represents a note record returned by the API
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteDraft carries the fields for a new note. Empty fields take the
// server-side defaults.
type NoteDraft struct {
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
}

// NotePatch is a partial update; nil fields are left unchanged.
type NotePatch struct {
	Title    *string `json:"title,omitempty"`
	Text     *string `json:"text,omitempty"`
	Category *string `json:"category,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// ListNotes returns all notes, oldest first
func (c *Client) ListNotes() ([]Note, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var collection []Note
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return collection, nil
}

// GetNote retrieves a single note by id
func (c *Client) GetNote(id int64) (*Note, error) {
	path := fmt.Sprintf("/api/notes/%d", id)
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var note Note
	if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &note, nil
}

// CreateNote creates a new note with the given fields
func (c *Client) CreateNote(draft NoteDraft) (*Note, error) {
	resp, err := c.doRequest(http.MethodPost, "/api/notes", draft)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var note Note
	if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &note, nil
}

// UpdateNote applies a partial update to an existing note
func (c *Client) UpdateNote(id int64, patch NotePatch) (*Note, error) {
	path := fmt.Sprintf("/api/notes/%d", id)
	resp, err := c.doRequest(http.MethodPut, path, patch)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var note Note
	if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &note, nil
}

// DeleteNote removes a note
func (c *Client) DeleteNote(id int64) error {
	path := fmt.Sprintf("/api/notes/%d", id)
	resp, err := c.doRequest(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var response map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	if _, ok := response["message"]; ok {
		return nil
	}
	return fmt.Errorf("failed to delete note: %v", response)
}

// SearchNotes returns the notes whose title or text contains the query
func (c *Client) SearchNotes(query string) ([]Note, error) {
	path := fmt.Sprintf("/api/search?q=%s", url.QueryEscape(query))
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var matches []Note
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return matches, nil
}
