package notes

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mudler/xlog"
)

// ErrNotFound is returned when no note matches the requested id.
var ErrNotFound = errors.New("note not found")

// Service implements CRUD and search over a Store with field normalization.
// Every operation reloads the collection from disk and mutations rewrite it
// in full, so external writes are picked up and the last writer wins.
type Service struct {
	store *Store
}

// NewService returns a service over the given store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// List returns every note in storage order.
func (s *Service) List() ([]*Note, error) {
	return s.store.Load()
}

// Get returns the note with the given id or ErrNotFound.
func (s *Service) Get(id int64) (*Note, error) {
	collection, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	for _, n := range collection {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, fmt.Errorf("note %d: %w", id, ErrNotFound)
}

// Create stores a new note with a fresh id and normalized fields. Both
// timestamps are set to the same instant.
func (s *Service) Create(draft Draft) (*Note, error) {
	collection, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	note := &Note{
		ID:        freshID(collection, now),
		Title:     NormalizeTitle(draft.Title),
		Text:      strings.TrimSpace(draft.Text),
		Category:  NormalizeCategory(draft.Category),
		Color:     NormalizeColor(draft.Color),
		CreatedAt: now,
		UpdatedAt: now,
	}

	collection = append(collection, note)
	if err := s.store.Save(collection); err != nil {
		return nil, err
	}

	xlog.Debug("Note created", "id", note.ID, "title", note.Title, "category", note.Category)
	return note, nil
}

// Update applies the non-nil fields of the patch to the note with the given
// id. updatedAt is refreshed on every successful update, even when the patch
// is empty; createdAt never changes.
func (s *Service) Update(id int64, patch Patch) (*Note, error) {
	collection, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	for _, n := range collection {
		if n.ID != id {
			continue
		}
		if patch.Title != nil {
			n.Title = NormalizeTitle(*patch.Title)
		}
		if patch.Text != nil {
			n.Text = strings.TrimSpace(*patch.Text)
		}
		if patch.Category != nil {
			n.Category = NormalizeCategory(*patch.Category)
		}
		if patch.Color != nil {
			n.Color = *patch.Color
		}
		n.UpdatedAt = time.Now().UTC()

		if err := s.store.Save(collection); err != nil {
			return nil, err
		}
		xlog.Debug("Note updated", "id", id)
		return n, nil
	}
	return nil, fmt.Errorf("note %d: %w", id, ErrNotFound)
}

// Delete removes exactly one note by id and rewrites the collection.
func (s *Service) Delete(id int64) error {
	collection, err := s.store.Load()
	if err != nil {
		return err
	}

	for i, n := range collection {
		if n.ID != id {
			continue
		}
		collection = append(collection[:i], collection[i+1:]...)
		if err := s.store.Save(collection); err != nil {
			return err
		}
		xlog.Debug("Note deleted", "id", id)
		return nil
	}
	return fmt.Errorf("note %d: %w", id, ErrNotFound)
}

// Search returns notes whose title or text contains the query,
// case-insensitively. An empty query returns every note.
func (s *Service) Search(query string) ([]*Note, error) {
	collection, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	matches := []*Note{}
	for _, n := range collection {
		if n.Matches(query) {
			matches = append(matches, n)
		}
	}
	return matches, nil
}

// freshID derives a new id from the creation instant, incrementing past any
// id already present so uniqueness holds even for same-millisecond creates.
func freshID(collection []*Note, now time.Time) int64 {
	taken := make(map[int64]struct{}, len(collection))
	for _, n := range collection {
		taken[n.ID] = struct{}{}
	}
	id := now.UnixMilli()
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}
