package models

import (
	"bytes"
	"encoding/json"
)

// Category is a named list of bookmarks in the target bookmarks file.
type Category struct {
	ID        string    `json:"id"`
	SourceID  SourceID  `json:"sourceId,omitempty"`
	Name      string    `json:"name"`
	Bookmarks Bookmarks `json:"bookmarks"`
}

// Bookmark is a single link in the target bookmarks file. Icon is written as
// null when the source dial had no thumbnail.
type Bookmark struct {
	ID       string   `json:"id"`
	SourceID SourceID `json:"sourceId,omitempty"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Icon     *string  `json:"icon"`
}

// Bookmarks marshals an empty or nil list as [] so every category in the
// target file has an array.
type Bookmarks []Bookmark

// MarshalJSON implements json.Marshaler. URLs are not HTML-escaped, so a
// query string keeps its literal & in the file.
func (b Bookmarks) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]Bookmark(b)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// CountBookmarks returns the number of bookmarks across all categories.
func CountBookmarks(categories []Category) int {
	total := 0
	for _, c := range categories {
		total += len(c.Bookmarks)
	}
	return total
}
