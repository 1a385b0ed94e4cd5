package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SourceID is an identifier from a Speed Dial export. The exporter writes ids
// as numbers but older versions wrote strings, so both decode to the same
// canonical string: 1, 1.0 and "1" are equal.
type SourceID string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *SourceID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SourceID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number, got %s", data)
	}
	*id = SourceID(canonicalNumber(n))
	return nil
}

func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}

// String returns the canonical form of the identifier.
func (id SourceID) String() string {
	return string(id)
}

// IsZero reports whether the identifier was absent or null.
func (id SourceID) IsZero() bool {
	return id == ""
}

// Text is a free-text field from a Speed Dial export such as a title or URL.
// Hand-edited and third-party exports sometimes carry numbers or booleans
// there; they decode to their JSON text so one odd dial does not fail the
// whole file. Objects and arrays are kept as compact JSON.
type Text string

// UnmarshalJSON accepts any JSON value.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case data[0] == '{' || data[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = Text(buf.String())
		return nil
	case bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")):
		*t = Text(data)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid text value %s", data)
	}
	*t = Text(canonicalNumber(n))
	return nil
}

// String returns the decoded text.
func (t Text) String() string {
	return string(t)
}

// SpeedDialExport is the top-level document written by the Speed Dial 2
// "export" action. Fields this tool does not need are ignored.
type SpeedDialExport struct {
	Groups []Group `json:"groups"`
	Dials  []Dial  `json:"dials"`
}

// HasDials reports whether the export carried a dials array at all.
func (e *SpeedDialExport) HasDials() bool {
	return e.Dials != nil
}

// Group is a named collection of dials.
type Group struct {
	ID    SourceID `json:"id"`
	Title Text     `json:"title"`
}

// Dial is a single saved link inside a group.
type Dial struct {
	ID        SourceID `json:"id"`
	GroupID   SourceID `json:"idgroup"`
	Title     Text     `json:"title"`
	URL       Text     `json:"url"`
	Thumbnail Text     `json:"thumbnail,omitempty"`
}

// Icon returns the thumbnail as a bookmark icon, or nil when the dial has none.
func (d Dial) Icon() *string {
	if d.Thumbnail == "" {
		return nil
	}
	icon := d.Thumbnail.String()
	return &icon
}
