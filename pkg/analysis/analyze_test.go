package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobrackets/pkg/config"
	"github.com/yaklabco/gobrackets/pkg/runner"
)

// scannedResult builds a Result from real scans of two small files:
// a C source with nested brackets and a plain-text file with one pair.
func scannedResult(t *testing.T) *runner.Result {
	t.Helper()

	cSource := []byte("int f(void) { return g(1); }\n")
	textCfg := config.NewConfig()
	textCfg.Lang = "text"

	return runner.NewResult(
		runner.ScanContent("main.c", cSource, nil, false),
		runner.ScanContent("data.txt", []byte("a[i]\n"), textCfg, false),
	)
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	report := Analyze(scannedResult(t), DefaultOptions())

	assert.Equal(t, ReportVersion, report.Version)
	assert.False(t, report.Timestamp.IsZero())

	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithBrackets)
	assert.Equal(t, 8, report.Totals.Brackets)
	assert.Equal(t, 1, report.Totals.MaxLevel)
	assert.True(t, report.Totals.HasBrackets())

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "main.c", report.ByFile[0].Path)
	assert.Equal(t, 6, report.ByFile[0].Brackets)
	assert.Equal(t, 1, report.ByFile[0].MaxLevel)
	assert.Equal(t, "c", report.ByFile[0].Language)
	assert.Equal(t, []string{"curly", "round"}, report.ByFile[0].Kinds)
	assert.Equal(t, "data.txt", report.ByFile[1].Path)
	assert.Equal(t, 2, report.ByFile[1].Brackets)

	require.Len(t, report.ByKind, 3)
	assert.Equal(t, "round", report.ByKind[0].Kind)
	assert.Equal(t, 4, report.ByKind[0].Brackets)
	assert.Equal(t, []string{"main.c"}, report.ByKind[0].Files)
	// Equal counts fall back to alphabetical order.
	assert.Equal(t, "curly", report.ByKind[1].Kind)
	assert.Equal(t, "square", report.ByKind[2].Kind)

	require.Len(t, report.ByLanguage, 2)
	assert.Equal(t, "c", report.ByLanguage[0].Language)
	assert.Equal(t, 6, report.ByLanguage[0].Brackets)
	assert.Equal(t, 1, report.ByLanguage[0].Files)
}

func TestAnalyzeNilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())

	assert.Equal(t, ReportVersion, report.Version)
	assert.Zero(t, report.Totals.Files)
	assert.Empty(t, report.ByFile)
	assert.False(t, report.Totals.HasBrackets())
}

func TestAnalyzeSkippedAndErrored(t *testing.T) {
	t.Parallel()

	result := runner.NewResult(
		runner.FileOutcome{Path: "big.bin", Skipped: true},
		runner.FileOutcome{Path: "gone.c", Error: errors.New("read failed")},
	)

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.FilesSkipped)
	assert.Equal(t, 1, report.Totals.FilesErrored)
	assert.Zero(t, report.Totals.Brackets)
	assert.Empty(t, report.ByFile)
}

func TestAnalyzeSortAlpha(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha

	report := Analyze(scannedResult(t), opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "data.txt", report.ByFile[0].Path)
	assert.Equal(t, "main.c", report.ByFile[1].Path)

	require.Len(t, report.ByKind, 3)
	assert.Equal(t, "curly", report.ByKind[0].Kind)
	assert.Equal(t, "round", report.ByKind[1].Kind)
	assert.Equal(t, "square", report.ByKind[2].Kind)
}

func TestAnalyzeSortDepth(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortByDepth

	report := Analyze(scannedResult(t), opts)

	require.Len(t, report.ByFile, 2)
	// The C file nests one level deep; the text file stays flat.
	assert.Equal(t, "main.c", report.ByFile[0].Path)
	assert.Equal(t, "data.txt", report.ByFile[1].Path)
}

func TestAnalyzeExcludesViews(t *testing.T) {
	t.Parallel()

	report := Analyze(scannedResult(t), Options{SortBy: SortByCount, SortDesc: true})

	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByKind)
	assert.Empty(t, report.ByLanguage)
	assert.Equal(t, 8, report.Totals.Brackets)
}

func TestSortFieldIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortByDepth.IsValid())
	assert.False(t, SortField("severity").IsValid())
	assert.False(t, SortField("").IsValid())
}

func TestMakeRelativePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/abs/main.c", makeRelativePath("/abs/main.c", ""))
	assert.Equal(t, "main.c", makeRelativePath("/abs/main.c", "/abs"))
	assert.Equal(t, "src/main.c", makeRelativePath("/abs/src/main.c", "/abs"))
}
