package models

import "linkboard/speeddial-import/internal/importerror"

// Skip reasons recorded on SkippedDial.
const (
	SkipReasonUnknownGroup = "unknown_group"
)

// SkippedDial is a dial that was left out of the target file. It is part of
// the import result so callers can report on it without parsing log output.
type SkippedDial struct {
	DialID  SourceID `csv:"dial_id" json:"dialId"`
	Title   string   `csv:"title" json:"title"`
	URL     string   `csv:"url" json:"url"`
	GroupID SourceID `csv:"group_id" json:"groupId"`
	Reason  string   `csv:"reason" json:"reason"`
}

// NewUnknownGroupSkip records a dial whose idgroup matched no group.
func NewUnknownGroupSkip(d Dial) SkippedDial {
	return SkippedDial{
		DialID:  d.ID,
		Title:   d.Title.String(),
		URL:     d.URL.String(),
		GroupID: d.GroupID,
		Reason:  SkipReasonUnknownGroup,
	}
}

// Warning returns the skip as an UnknownGroupWarning.
func (s SkippedDial) Warning() *importerror.UnknownGroupWarning {
	return &importerror.UnknownGroupWarning{
		DialTitle: s.Title,
		DialID:    s.DialID.String(),
		GroupID:   s.GroupID.String(),
	}
}
