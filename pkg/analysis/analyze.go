// Package analysis turns raw scan results into aggregate views: per-file,
// per-kind, and per-language bracket statistics suitable for rendering
// as a report.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/gobrackets/pkg/bracket"
	"github.com/yaklabco/gobrackets/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	kindMap   map[string]*KindAnalysis
	kindFiles map[string]map[string]bool
	langMap   map[string]*LanguageAnalysis
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		kindMap:   make(map[string]*KindAnalysis),
		kindFiles: make(map[string]map[string]bool),
		langMap:   make(map[string]*LanguageAnalysis),
	}
}

// getOrCreateKindAnalysis returns existing or creates new KindAnalysis.
func (ctx *analysisContext) getOrCreateKindAnalysis(kind string) *KindAnalysis {
	if _, ok := ctx.kindMap[kind]; !ok {
		ctx.kindMap[kind] = &KindAnalysis{Kind: kind}
		ctx.kindFiles[kind] = make(map[string]bool)
	}
	return ctx.kindMap[kind]
}

// getOrCreateLanguageAnalysis returns existing or creates new LanguageAnalysis.
func (ctx *analysisContext) getOrCreateLanguageAnalysis(lang string) *LanguageAnalysis {
	if _, ok := ctx.langMap[lang]; !ok {
		ctx.langMap[lang] = &LanguageAnalysis{Language: lang}
	}
	return ctx.langMap[lang]
}

// buildByKind constructs the ByKind slice from accumulated data.
func (ctx *analysisContext) buildByKind(opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(ctx.kindMap))
	for kind, ka := range ctx.kindMap {
		for f := range ctx.kindFiles[kind] {
			ka.Files = append(ka.Files, f)
		}
		slices.Sort(ka.Files)
		result = append(result, *ka)
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByLanguage constructs the ByLanguage slice from accumulated data.
func (ctx *analysisContext) buildByLanguage() []LanguageAnalysis {
	result := make([]LanguageAnalysis, 0, len(ctx.langMap))
	for _, la := range ctx.langMap {
		result = append(result, *la)
	}
	slices.SortFunc(result, func(left, right LanguageAnalysis) int {
		if c := cmp.Compare(right.Brackets, left.Brackets); c != 0 {
			return c
		}
		return cmp.Compare(left.Language, right.Language)
	})
	return result
}

// analyzeFile builds the FileAnalysis for one scanned file and feeds the
// kind and language accumulators.
func (ctx *analysisContext) analyzeFile(outcome runner.FileOutcome, displayPath string) FileAnalysis {
	fa := FileAnalysis{
		Path:            displayPath,
		Brackets:        len(outcome.Ranges),
		InactiveRegions: len(outcome.Inactive),
	}

	var lang string
	if outcome.Doc != nil {
		lang = outcome.Doc.LangID
		fa.Language = lang
	}

	la := ctx.getOrCreateLanguageAnalysis(lang)
	la.Files++
	la.Brackets += len(outcome.Ranges)

	fileKinds := make(map[string]bool)
	for _, rng := range outcome.Ranges {
		if rng.Level > fa.MaxLevel {
			fa.MaxLevel = rng.Level
		}
		if outcome.Doc == nil {
			continue
		}
		kind, _, ok := bracket.Classify(outcome.Doc.Content[rng.Start])
		if !ok {
			continue
		}
		name := kind.String()
		fileKinds[name] = true

		ka := ctx.getOrCreateKindAnalysis(name)
		ka.Brackets++
		ctx.kindFiles[name][displayPath] = true
	}

	for name := range fileKinds {
		fa.Kinds = append(fa.Kinds, name)
	}
	slices.Sort(fa.Kinds)

	return fa
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through file outcomes to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	var byFile []FileAnalysis

	for _, outcome := range result.Files {
		report.Totals.Files++
		if outcome.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if outcome.Skipped {
			report.Totals.FilesSkipped++
			continue
		}

		displayPath := makeRelativePath(outcome.Path, opts.WorkingDir)
		fa := ctx.analyzeFile(outcome, displayPath)

		report.Totals.Brackets += fa.Brackets
		report.Totals.InactiveRegions += fa.InactiveRegions
		if fa.Brackets > 0 {
			report.Totals.FilesWithBrackets++
		}
		if fa.MaxLevel > report.Totals.MaxLevel {
			report.Totals.MaxLevel = fa.MaxLevel
		}

		if opts.IncludeByFile && fa.Brackets > 0 {
			byFile = append(byFile, fa)
		}
	}

	if opts.IncludeByFile {
		sortFileAnalysis(byFile, opts.SortBy, opts.SortDesc)
		report.ByFile = byFile
	}
	if opts.IncludeByKind {
		report.ByKind = ctx.buildByKind(opts)
	}
	if opts.IncludeByLanguage {
		report.ByLanguage = ctx.buildByLanguage()
	}

	return report
}

func sortKindAnalysis(kinds []KindAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(kinds, func(left, right KindAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Kind, right.Kind)
		default: // SortByCount, SortByDepth
			result := cmp.Compare(left.Brackets, right.Brackets)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Kind, right.Kind)
			}
			return result
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Path, right.Path)
		case SortByDepth:
			// Deepest nesting first, bracket count breaks ties.
			result := cmp.Compare(right.MaxLevel, left.MaxLevel)
			if result == 0 {
				result = cmp.Compare(right.Brackets, left.Brackets)
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Brackets, right.Brackets)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		}
	})
}
