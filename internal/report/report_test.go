package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSkipped() []models.SkippedDial {
	return []models.SkippedDial{
		models.NewUnknownGroupSkip(models.Dial{ID: "20", GroupID: "99", Title: "Lost", URL: "https://lost.example"}),
		models.NewUnknownGroupSkip(models.Dial{ID: "21", GroupID: "98", Title: "Also, lost", URL: "https://x.example"}),
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("out/skipped.json"))
	assert.Equal(t, FormatJSON, FormatForPath("SKIPPED.JSON"))
	assert.Equal(t, FormatCSV, FormatForPath("skipped.csv"))
	assert.Equal(t, FormatCSV, FormatForPath("skipped"))
}

func TestSkippedWriter_GenerateCSV(t *testing.T) {
	w := NewSkippedWriter(0, &logging.MockLogger{})

	out, err := w.Generate(sampleSkipped(), FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "dial_id,title,url,group_id,reason", lines[0])
	assert.Equal(t, "20,Lost,https://lost.example,99,unknown_group", lines[1])
	assert.Equal(t, `21,"Also, lost",https://x.example,98,unknown_group`, lines[2])
}

func TestSkippedWriter_GenerateCSV_Delimiter(t *testing.T) {
	w := NewSkippedWriter(';', &logging.MockLogger{})

	out, err := w.Generate(sampleSkipped()[:1], FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(out), "dial_id;title;url;group_id;reason")
	assert.Contains(t, string(out), "20;Lost;https://lost.example;99;unknown_group")
}

func TestSkippedWriter_GenerateJSON(t *testing.T) {
	w := NewSkippedWriter(',', &logging.MockLogger{})

	out, err := w.Generate(sampleSkipped(), FormatJSON)
	require.NoError(t, err)

	var decoded []models.SkippedDial
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, models.SourceID("99"), decoded[0].GroupID)
	assert.Equal(t, "Also, lost", decoded[1].Title)

	empty, err := w.Generate(nil, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}

func TestSkippedWriter_UnsupportedFormat(t *testing.T) {
	w := NewSkippedWriter(',', &logging.MockLogger{})
	_, err := w.Generate(sampleSkipped(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestSkippedWriter_Write(t *testing.T) {
	log := &logging.MockLogger{}
	w := NewSkippedWriter(',', log)
	path := filepath.Join(t.TempDir(), "reports", "skipped.csv")

	require.NoError(t, w.Write(path, sampleSkipped()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "dial_id,title"))
	assert.True(t, log.HasEntry("INFO", "Wrote skipped dial report"))
}

func TestSkippedWriter_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	w := NewSkippedWriter(',', &logging.MockLogger{})
	err := w.Write(filepath.Join(blocker, "skipped.json"), sampleSkipped())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing skipped report")
}
