// Package transform maps a Speed Dial export onto the bookmarks file layout.
//
// Transform does no I/O and no logging: it takes a decoded export and returns
// the categories to write plus the dials it had to leave out. The importer
// package wraps it with file handling.
package transform

import (
	"strconv"

	"linkboard/speeddial-import/internal/idgen"
	"linkboard/speeddial-import/internal/models"
)

// Options tune the generated output.
type Options struct {
	// KeepSourceID copies the export id of each group and dial into the
	// sourceId field of the generated category or bookmark.
	KeepSourceID bool
}

// Result is the outcome of one transform.
type Result struct {
	// Categories in export group order.
	Categories []models.Category
	// Skipped lists dials that were not placed in any category, in export order.
	Skipped []models.SkippedDial
	// DialCount is the number of dials in the export.
	DialCount int
}

// BookmarkCount returns the number of bookmarks placed in categories.
func (r *Result) BookmarkCount() int {
	return models.CountBookmarks(r.Categories)
}

// Transform converts doc using gen for every generated id.
//
// Each group becomes one category, in order. Each dial is appended to the
// category of the group whose id equals the dial's idgroup; when several
// groups share an id the last one wins. Dials with no matching group are
// returned in Result.Skipped. A nil doc yields an empty result.
func Transform(doc *models.SpeedDialExport, gen idgen.Generator, opts Options) *Result {
	res := &Result{Categories: []models.Category{}}
	if doc == nil {
		return res
	}

	ids := newIDSet(gen)
	res.Categories = make([]models.Category, 0, len(doc.Groups))
	byGroup := make(map[models.SourceID]int, len(doc.Groups))

	for _, g := range doc.Groups {
		c := models.Category{
			ID:        ids.next(models.CategoryIDPrefix, g.ID),
			Name:      g.Title.String(),
			Bookmarks: models.Bookmarks{},
		}
		if opts.KeepSourceID {
			c.SourceID = g.ID
		}
		res.Categories = append(res.Categories, c)

		// A group without an id cannot be referenced by any dial.
		if !g.ID.IsZero() {
			byGroup[g.ID] = len(res.Categories) - 1
		}
	}

	if !doc.HasDials() {
		return res
	}

	res.DialCount = len(doc.Dials)
	for _, d := range doc.Dials {
		idx, ok := byGroup[d.GroupID]
		if !ok {
			res.Skipped = append(res.Skipped, models.NewUnknownGroupSkip(d))
			continue
		}

		b := models.Bookmark{
			ID:    ids.next(models.BookmarkIDPrefix, d.ID),
			Title: d.Title.String(),
			URL:   d.URL.String(),
			Icon:  d.Icon(),
		}
		if opts.KeepSourceID {
			b.SourceID = d.ID
		}
		res.Categories[idx].Bookmarks = append(res.Categories[idx].Bookmarks, b)
	}

	return res
}

// idSet hands out generator ids and guarantees uniqueness within one output
// even if the generator repeats itself.
type idSet struct {
	gen  idgen.Generator
	seen map[string]struct{}
}

func newIDSet(gen idgen.Generator) *idSet {
	if gen == nil {
		gen = idgen.NewUUIDGenerator()
	}
	return &idSet{gen: gen, seen: make(map[string]struct{})}
}

func (s *idSet) next(prefix string, sourceID models.SourceID) string {
	id := s.gen.NewID(prefix, sourceID.String())
	candidate := id
	for n := 2; ; n++ {
		if _, dup := s.seen[candidate]; !dup {
			break
		}
		candidate = id + "-" + strconv.Itoa(n)
	}
	s.seen[candidate] = struct{}{}
	return candidate
}
