package notes

import (
	"strings"
	"time"
)

// Allowed note categories. Anything else normalizes to CategoryGeneral.
const (
	CategoryGeneral  = "general"
	CategoryPersonal = "personal"
	CategoryWork     = "work"
	CategoryIdeas    = "ideas"
)

const (
	// DefaultTitle replaces a title that is blank after trimming.
	DefaultTitle = "Untitled"
	// DefaultColor is used when no color is supplied on creation.
	DefaultColor = "#ffffff"
)

// Categories enumerates the closed category set, in display order.
var Categories = []string{CategoryGeneral, CategoryPersonal, CategoryWork, CategoryIdeas}

// Note is a persisted title/text/category/color record with audit
// timestamps. The id is the creation time in Unix milliseconds, bumped past
// collisions so it stays unique within the collection.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Draft carries the caller-supplied fields for a new note. Missing fields
// fall back to the documented defaults during creation.
type Draft struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// Patch is a partial update. Nil fields are left untouched; a pointer to an
// empty string is a real value, not an omission.
type Patch struct {
	Title    *string `json:"title"`
	Text     *string `json:"text"`
	Category *string `json:"category"`
	Color    *string `json:"color"`
}

// NormalizeTitle trims the title and substitutes DefaultTitle when nothing
// is left.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

// NormalizeCategory matches the category case-insensitively against the
// closed set; anything unrecognized becomes CategoryGeneral.
func NormalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, c := range Categories {
		if category == c {
			return c
		}
	}
	return CategoryGeneral
}

// NormalizeColor substitutes DefaultColor for an empty value; any other
// string is stored as given.
func NormalizeColor(color string) string {
	if color == "" {
		return DefaultColor
	}
	return color
}

// Matches reports whether the query occurs in the title or the text,
// case-insensitively. An empty query matches every note.
func (n *Note) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Text), q)
}
