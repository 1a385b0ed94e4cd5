package importer_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"linkboard/speeddial-import/internal/idgen"
	"linkboard/speeddial-import/internal/importer"
	"linkboard/speeddial-import/internal/importerror"
	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"
	"linkboard/speeddial-import/internal/speeddialparser"
	"linkboard/speeddial-import/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workedExample = `{
	"groups": [{"id": 1, "title": "Work"}],
	"dials": [
		{"id": 10, "idgroup": 1, "title": "Docs", "url": "https://x"},
		{"id": 11, "idgroup": 99, "title": "Orphan", "url": "https://y"}
	]
}`

type fixture struct {
	dir    string
	source string
	target string
	backup string
	log    *logging.MockLogger
}

func newFixture(t *testing.T, source string) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:    dir,
		source: filepath.Join(dir, "export.json"),
		target: filepath.Join(dir, "data", "bookmarks.json"),
		backup: filepath.Join(dir, "data", "bookmarks.backup.json"),
		log:    &logging.MockLogger{},
	}
	require.NoError(t, os.WriteFile(f.source, []byte(source), 0600))
	return f
}

func (f *fixture) importer(settings importer.Settings) *importer.Importer {
	return importer.New(speeddialparser.NewAdapter(f.log), idgen.NewSequenceGenerator(), f.log, settings)
}

func (f *fixture) options() importer.Options {
	return importer.Options{SourcePath: f.source, TargetPath: f.target, BackupPath: f.backup}
}

func readCategories(t *testing.T, path string) []models.Category {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var categories []models.Category
	require.NoError(t, json.Unmarshal(data, &categories))
	return categories
}

type failingReports struct{ calls int }

func (r *failingReports) Write(string, []models.SkippedDial) error {
	r.calls++
	return errors.New("disk full")
}

func TestImport_WorkedExample(t *testing.T) {
	f := newFixture(t, workedExample)

	res, err := f.importer(importer.Settings{BackupEnabled: true}).Import(context.Background(), f.options())
	require.NoError(t, err)

	assert.Equal(t, 1, res.CategoryCount)
	assert.Equal(t, 1, res.BookmarkCount)
	assert.Equal(t, 2, res.DialCount)
	assert.False(t, res.BackupCreated)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "Orphan", res.Skipped[0].Title)

	written := readCategories(t, f.target)
	require.Len(t, written, 1)
	assert.Equal(t, "Work", written[0].Name)
	require.Len(t, written[0].Bookmarks, 1)
	assert.Equal(t, "Docs", written[0].Bookmarks[0].Title)
	assert.Nil(t, written[0].Bookmarks[0].Icon)
	assert.NoFileExists(t, f.backup)

	warnings := f.log.GetEntriesByLevel("WARN")
	require.Len(t, warnings, 1)
	title, ok := warnings[0].Field(logging.FieldDialTitle)
	require.True(t, ok)
	assert.Equal(t, "Orphan", title)
	groupID, _ := warnings[0].Field(logging.FieldGroupID)
	assert.Equal(t, "99", groupID)

	assert.True(t, f.log.HasEntry("INFO", "Found 2 dials"))
	assert.True(t, f.log.HasEntry("INFO", "Created 1 categories"))
}

func TestImport_NonStringTitleAndURL(t *testing.T) {
	f := newFixture(t, `{
		"groups": [{"id": 1, "title": 2024}],
		"dials": [
			{"id": 10, "idgroup": 1, "title": 42, "url": "https://x"},
			{"id": 11, "idgroup": 1, "title": "Broken", "url": null},
			{"id": 12, "idgroup": 99, "title": true, "url": 7}
		]
	}`)

	res, err := f.importer(importer.Settings{BackupEnabled: true}).Import(context.Background(), f.options())
	require.NoError(t, err)
	assert.Equal(t, 2, res.BookmarkCount)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "true", res.Skipped[0].Title)
	assert.Equal(t, "7", res.Skipped[0].URL)

	written := readCategories(t, f.target)
	require.Len(t, written, 1)
	assert.Equal(t, "2024", written[0].Name)
	require.Len(t, written[0].Bookmarks, 2)
	assert.Equal(t, "42", written[0].Bookmarks[0].Title)
	assert.Equal(t, "https://x", written[0].Bookmarks[0].URL)
	assert.Equal(t, "Broken", written[0].Bookmarks[1].Title)
	assert.Empty(t, written[0].Bookmarks[1].URL)
}

func TestImport_BackupIsExactCopyOfPreviousTarget(t *testing.T) {
	f := newFixture(t, workedExample)
	previous := "[ {\"id\":\"legacy\",\"name\":\"Old\",\"bookmarks\":[]} ]\n\n"
	require.NoError(t, os.MkdirAll(filepath.Dir(f.target), 0750))
	require.NoError(t, os.WriteFile(f.target, []byte(previous), 0600))

	res, err := f.importer(importer.Settings{BackupEnabled: true}).Import(context.Background(), f.options())
	require.NoError(t, err)
	assert.True(t, res.BackupCreated)

	backup, err := os.ReadFile(f.backup)
	require.NoError(t, err)
	assert.Equal(t, previous, string(backup))

	written := readCategories(t, f.target)
	assert.Equal(t, "Work", written[0].Name)
}

func TestImport_DefaultBackupPath(t *testing.T) {
	f := newFixture(t, workedExample)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.target), 0750))
	require.NoError(t, os.WriteFile(f.target, []byte("[]"), 0600))

	opts := f.options()
	opts.BackupPath = ""
	res, err := f.importer(importer.Settings{BackupEnabled: true}).Import(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, res.BackupCreated)
	assert.FileExists(t, store.DefaultBackupPath(f.target))
}

func TestImport_BackupDisabled(t *testing.T) {
	f := newFixture(t, workedExample)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.target), 0750))
	require.NoError(t, os.WriteFile(f.target, []byte("[]"), 0600))

	opts := f.options()
	opts.NoBackup = true
	res, err := f.importer(importer.Settings{BackupEnabled: true}).Import(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, res.BackupCreated)
	assert.NoFileExists(t, f.backup)
	assert.True(t, f.log.HasEntry("WARN", "Backups disabled, overwriting existing target file with no copy kept"))
}

func TestImport_BackupFailureLeavesTargetUntouched(t *testing.T) {
	f := newFixture(t, workedExample)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.target), 0750))
	require.NoError(t, os.WriteFile(f.target, []byte("original"), 0600))
	require.NoError(t, os.MkdirAll(f.backup, 0750))

	res, err := f.importer(importer.Settings{BackupEnabled: true}).Import(context.Background(), f.options())
	require.Error(t, err)
	assert.Nil(t, res)

	var backupErr *importerror.BackupError
	assert.True(t, errors.As(err, &backupErr))

	content, readErr := os.ReadFile(f.target)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(content))
}

func TestImport_SourceErrors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		f := newFixture(t, workedExample)
		opts := f.options()
		opts.SourcePath = filepath.Join(f.dir, "nope.json")

		_, err := f.importer(importer.Settings{}).Import(context.Background(), opts)
		var readErr *importerror.SourceReadError
		assert.True(t, errors.As(err, &readErr))
		assert.NoFileExists(t, f.target)
	})

	t.Run("invalid json", func(t *testing.T) {
		f := newFixture(t, `{"groups": [`)

		_, err := f.importer(importer.Settings{}).Import(context.Background(), f.options())
		var parseErr *importerror.SourceParseError
		assert.True(t, errors.As(err, &parseErr))
		assert.NoFileExists(t, f.target)
	})
}

func TestImport_TargetWriteFailure(t *testing.T) {
	f := newFixture(t, workedExample)
	mock := &store.MockBookmarkStore{SaveError: &importerror.TargetWriteError{Path: f.target, Err: errors.New("read-only")}}

	im := f.importer(importer.Settings{BackupEnabled: true})
	im.SetStoreFactory(func(string, string, logging.Logger) importer.TargetStore { return mock })

	_, err := im.Import(context.Background(), f.options())
	var writeErr *importerror.TargetWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, 1, mock.SaveCalls)
}

func TestImport_MissingTargetPath(t *testing.T) {
	f := newFixture(t, workedExample)
	opts := f.options()
	opts.TargetPath = ""

	_, err := f.importer(importer.Settings{}).Import(context.Background(), opts)
	require.Error(t, err)
}

func TestImport_CancelledContextWritesNothing(t *testing.T) {
	f := newFixture(t, workedExample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.importer(importer.Settings{BackupEnabled: true}).Import(ctx, f.options())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NoFileExists(t, f.target)
}

func TestImport_SkippedReport(t *testing.T) {
	f := newFixture(t, workedExample)
	reports := &failingReports{}

	im := f.importer(importer.Settings{SkippedReport: filepath.Join(f.dir, "skipped.csv")})
	im.SetReportWriter(reports)

	res, err := im.Import(context.Background(), f.options())
	require.NoError(t, err, "report failures must not fail the import")
	assert.Len(t, res.Skipped, 1)
	assert.Equal(t, 1, reports.calls)
	assert.True(t, f.log.HasEntry("WARN", "Failed to write skipped dial report"))
}

func TestImport_NoReportWithoutSkips(t *testing.T) {
	f := newFixture(t, `{"groups": [{"id": 1, "title": "Work"}], "dials": []}`)
	reports := &failingReports{}

	im := f.importer(importer.Settings{})
	im.SetReportWriter(reports)

	opts := f.options()
	opts.SkippedReport = filepath.Join(f.dir, "skipped.json")
	_, err := im.Import(context.Background(), opts)
	require.NoError(t, err)
	assert.Zero(t, reports.calls)
}

func TestImport_StructurallyIdempotent(t *testing.T) {
	f := newFixture(t, `{
		"groups": [{"id": 1, "title": "A"}, {"id": 2, "title": "B"}],
		"dials": [
			{"id": 1, "idgroup": 2, "title": "b", "url": "https://b", "thumbnail": "https://b/icon.png"},
			{"id": 2, "idgroup": 1, "title": "a", "url": "https://a"}
		]
	}`)
	im := importer.New(speeddialparser.NewAdapter(f.log), idgen.NewUUIDGenerator(), f.log, importer.Settings{BackupEnabled: true})

	_, err := im.Import(context.Background(), f.options())
	require.NoError(t, err)
	first := readCategories(t, f.target)

	_, err = im.Import(context.Background(), f.options())
	require.NoError(t, err)
	second := readCategories(t, f.target)

	require.Len(t, second, len(first))
	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Name, second[i].Name)
		require.Len(t, second[i].Bookmarks, len(first[i].Bookmarks))
		for j := range first[i].Bookmarks {
			assert.Equal(t, first[i].Bookmarks[j].Title, second[i].Bookmarks[j].Title)
			assert.Equal(t, first[i].Bookmarks[j].URL, second[i].Bookmarks[j].URL)
			assert.Equal(t, first[i].Bookmarks[j].Icon, second[i].Bookmarks[j].Icon)
		}
	}
	require.NotNil(t, second[1].Bookmarks[0].Icon)
	assert.Equal(t, "https://b/icon.png", *second[1].Bookmarks[0].Icon)
}

func TestPlan_HasNoSideEffects(t *testing.T) {
	f := newFixture(t, workedExample)

	res, err := f.importer(importer.Settings{BackupEnabled: true}).Plan(context.Background(), f.source)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CategoryCount)
	assert.Len(t, res.Skipped, 1)
	assert.Equal(t, res.DialCount, res.BookmarkCount+len(res.Skipped))
	assert.NoDirExists(t, filepath.Dir(f.target))
}

func TestPlan_KeepSourceID(t *testing.T) {
	f := newFixture(t, workedExample)

	res, err := f.importer(importer.Settings{KeepSourceID: true}).Plan(context.Background(), f.source)
	require.NoError(t, err)
	assert.Equal(t, models.SourceID("1"), res.Categories[0].SourceID)
	assert.Equal(t, models.SourceID("10"), res.Categories[0].Bookmarks[0].SourceID)
}

func TestImport_RefusesOverlappingPaths(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *fixture, opts *importer.Options)
	}{
		{"target is source", func(f *fixture, opts *importer.Options) { opts.TargetPath = f.source }},
		{"backup is source", func(f *fixture, opts *importer.Options) { opts.BackupPath = f.source }},
		{"backup is target", func(f *fixture, opts *importer.Options) { opts.BackupPath = f.target }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, workedExample)
			opts := f.options()
			tt.modify(f, &opts)

			_, err := f.importer(importer.Settings{BackupEnabled: true}).Import(context.Background(), opts)
			var validationErr *importerror.ValidationError
			require.True(t, errors.As(err, &validationErr))

			source, readErr := os.ReadFile(f.source)
			require.NoError(t, readErr)
			assert.Equal(t, workedExample, string(source))
		})
	}
}

func TestImport_UnsupportedReportFormat(t *testing.T) {
	f := newFixture(t, workedExample)
	opts := f.options()
	opts.SkippedReport = filepath.Join(f.dir, "skipped.xml")

	_, err := f.importer(importer.Settings{}).Import(context.Background(), opts)
	var validationErr *importerror.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NoFileExists(t, f.target)
}
