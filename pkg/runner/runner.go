package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gobrackets/pkg/bracket"
	"github.com/yaklabco/gobrackets/pkg/config"
	"github.com/yaklabco/gobrackets/pkg/fsutil"
	"github.com/yaklabco/gobrackets/pkg/langdetect"
	"github.com/yaklabco/gobrackets/pkg/textdoc"
	"github.com/yaklabco/gobrackets/pkg/tokenize"
)

// DefaultMaxFileSize is the largest file the runner will scan.
const DefaultMaxFileSize = 8 << 20 // 8 MiB

// Runner orchestrates multi-file bracket scanning.
type Runner struct {
	// MaxFileSize is the largest file size to scan; larger files are skipped.
	// Zero means DefaultMaxFileSize.
	MaxFileSize int64
}

// New creates a new Runner with default limits.
func New() *Runner {
	return &Runner{MaxFileSize: DefaultMaxFileSize}
}

// Run discovers files under opts.Paths and scans them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Scans files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	cfg := opts.effectiveConfig()

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, cfg, opts.WithInactive)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results.
	// Use a map to maintain order since workers may complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker scans files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	cfg *config.Config,
	withInactive bool,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.ScanFile(path, cfg, withInactive)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ScanFile reads and scans a single file.
func (r *Runner) ScanFile(path string, cfg *config.Config, withInactive bool) FileOutcome {
	outcome := FileOutcome{Path: path}

	maxSize := r.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	content, _, err := fsutil.ReadFile(path, maxSize)
	if errors.Is(err, fsutil.ErrTooLarge) {
		outcome.Skipped = true
		return outcome
	}
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	if fsutil.IsBinary(content) {
		outcome.Skipped = true
		return outcome
	}

	return ScanContent(path, content, cfg, withInactive)
}

// ScanContent scans in-memory content, detecting the language unless
// the config forces one. It is also used for stdin input.
func ScanContent(path string, content []byte, cfg *config.Config, withInactive bool) FileOutcome {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	lang := cfg.Lang
	if lang == "" {
		lang = langdetect.DetectFile(path, content)
	}

	var tokens []bracket.Token
	if !cfg.NoTokenizer {
		tokens = tokenize.Tokens(content, lang)
	}
	ranges := bracket.Scan(content, tokens, lang, cfg.ScanOptions())

	outcome := FileOutcome{
		Path:   path,
		Doc:    textdoc.NewSnapshot(path, lang, content),
		Ranges: ranges,
	}

	if withInactive && bracket.CFamily(lang) {
		outcome.Inactive = bracket.InactiveRanges(content)
	}

	return outcome
}
