package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexstat/zipfian/pkg/zipfian/compare"
	"github.com/lexstat/zipfian/pkg/zipfian/fit"
	"github.com/lexstat/zipfian/pkg/zipfian/rank"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores flag defaults so tests do not leak state into
// each other through the package-level command.
func resetFlags() {
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), analyzeCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnalyzeTableOutput(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "sample.txt", "кот кот собака кот собака и мышь")

	out, err := execute(t, "analyze", doc, "--top", "200", "--no-chart")
	require.NoError(t, err)

	assert.Contains(t, out, "sample.txt")
	assert.Contains(t, out, "3.1837")
	assert.Contains(t, out, "кот")
	assert.Contains(t, out, "Comparison")
}

func TestAnalyzeJSONOutput(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "sample.txt", "кот кот собака кот собака и мышь")

	out, err := execute(t, "analyze", doc, "--top", "200", "--json", "--no-chart")
	require.NoError(t, err)

	var summaries []summaryJSON
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 6, s.TotalTokens)
	assert.Equal(t, 3, s.UniqueTokens)
	assert.InDelta(t, 3.1837, s.C, 0.001)
	require.Len(t, s.Words, 3)
	assert.Equal(t, "кот", s.Words[0].Word)
	assert.Equal(t, 1, s.Words[0].Rank)
}

func TestAnalyzeMissingFileFailsFast(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "absent.txt"), "--no-chart")
	assert.Error(t, err)
}

func TestAnalyzeKeepGoing(t *testing.T) {
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.txt", "кот кот мышь")
	missing := filepath.Join(dir, "absent.txt")

	out, err := execute(t, "analyze", missing, good, "--keep-going", "--no-chart")
	require.NoError(t, err)

	assert.Contains(t, out, "Analysis failed")
	assert.Contains(t, out, "good.txt")
}

func TestAnalyzeCustomStopwords(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "doc.txt", "кот кот собака")
	stops := writeDoc(t, dir, "stops.yaml", "terms:\n  - собака\n")

	out, err := execute(t, "analyze", doc, "--stopwords", stops, "--json", "--no-chart")
	require.NoError(t, err)

	var summaries []summaryJSON
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].TotalTokens)
	assert.Equal(t, 1, summaries[0].UniqueTokens)
}

func TestAnalyzeRejectsNegativeTop(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "doc.txt", "кот")

	_, err := execute(t, "analyze", doc, "--top", "-2", "--no-chart")
	assert.Error(t, err)
}

func TestAnalyzeChartRendered(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "doc.txt", "кот кот кот собака собака мышь")
	chart := filepath.Join(dir, "out.png")

	_, err := execute(t, "analyze", doc, "--chart", chart)
	require.NoError(t, err)

	info, err := os.Stat(chart)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteJSONFailedDocument(t *testing.T) {
	summaries := []compare.DocumentSummary{
		{Name: "ok.txt", TotalTokens: 1, UniqueTokens: 1,
			Items: []rank.RankedItem{{FrequencyItem: rank.FrequencyItem{Token: "кот", Count: 1}, Rank: 1}},
			Fit:   fit.Fit{C: 1, Theoretical: []float64{1}}},
		{Name: "bad.txt", Err: os.ErrNotExist},
	}

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, summaries))

	var out []summaryJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Empty(t, out[0].Error)
	assert.NotEmpty(t, out[1].Error)
}

func TestNewRunIDUnique(t *testing.T) {
	a, b := newRunID(), newRunID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 26)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zipfian")
}
