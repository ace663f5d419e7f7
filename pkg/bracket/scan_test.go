package bracket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobrackets/pkg/bracket"
)

func levels(ranges []bracket.Range) []int {
	out := make([]int, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, r.Level)
	}
	return out
}

func offsets(ranges []bracket.Range) []int {
	out := make([]int, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, r.Start)
	}
	return out
}

func TestScanBalancedNesting(t *testing.T) {
	t.Parallel()

	opts := bracket.DefaultOptions()
	opts.LevelCount = 3

	ranges := bracket.Scan([]byte("((()))"), nil, "", opts)

	require.Len(t, ranges, 6)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, offsets(ranges))
	assert.Equal(t, []int{0, 1, 2, 2, 1, 0}, levels(ranges))

	for _, r := range ranges {
		assert.Equal(t, r.Start+1, r.End, "ranges are single characters")
	}
}

func TestScanLevelWraparound(t *testing.T) {
	t.Parallel()

	opts := bracket.DefaultOptions()
	opts.LevelCount = 2

	ranges := bracket.Scan([]byte("((()))"), nil, "", opts)

	require.Len(t, ranges, 6)
	assert.Equal(t, []int{0, 1, 0, 0, 1, 0}, levels(ranges))
}

func TestScanMixedKinds(t *testing.T) {
	t.Parallel()

	ranges := bracket.Scan([]byte("{[()]}"), nil, "", bracket.DefaultOptions())

	require.Len(t, ranges, 6)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 0}, levels(ranges))
}

func TestScanUnbalancedRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantOffsets []int
		wantLevels  []int
	}{
		{
			name:        "lone close is colored at level zero",
			input:       ")",
			wantOffsets: []int{0},
			wantLevels:  []int{0},
		},
		{
			name:        "crossed kinds drop the unresolved open",
			input:       "(]",
			wantOffsets: []int{0, 1},
			wantLevels:  []int{0, 0},
		},
		{
			name:        "close unwinds to the nearest matching open",
			input:       "([)",
			wantOffsets: []int{0, 1, 2},
			wantLevels:  []int{0, 1, 0},
		},
		{
			name:        "unmatched opens still get their depth level",
			input:       "(((",
			wantOffsets: []int{0, 1, 2},
			wantLevels:  []int{0, 1, 2},
		},
		{
			name:        "recovery resets depth after the stack empties",
			input:       ")(",
			wantOffsets: []int{0, 1},
			wantLevels:  []int{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ranges := bracket.Scan([]byte(tt.input), nil, "", bracket.DefaultOptions())

			assert.Equal(t, tt.wantOffsets, offsets(ranges))
			assert.Equal(t, tt.wantLevels, levels(ranges))
		})
	}
}

func TestScanIdempotent(t *testing.T) {
	t.Parallel()

	input := []byte("func f(a []int) map[string]int { return nil }")

	first := bracket.Scan(input, nil, "go", bracket.DefaultOptions())
	second := bracket.Scan(input, nil, "go", bracket.DefaultOptions())

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestScanDisabledKindKeepsLevels(t *testing.T) {
	t.Parallel()

	opts := bracket.DefaultOptions()
	opts.Kinds = opts.Kinds.Without(bracket.Round)

	// The parens are not emitted but still consume stack depth, so the
	// braces stay at level 1.
	ranges := bracket.Scan([]byte("({a})"), nil, "", opts)

	require.Len(t, ranges, 2)
	assert.Equal(t, []int{1, 3}, offsets(ranges))
	assert.Equal(t, []int{1, 1}, levels(ranges))
}

func TestScanTokenExclusion(t *testing.T) {
	t.Parallel()

	input := []byte("foo(a) // (b)")
	tokens := []bracket.Token{
		{Start: 0, End: 7, Tags: nil},
		{Start: 7, End: 13, Tags: []string{"CommentSingle"}},
	}

	ranges := bracket.Scan(input, tokens, "go", bracket.DefaultOptions())

	assert.Equal(t, []int{3, 5}, offsets(ranges))
	assert.Equal(t, []int{0, 0}, levels(ranges))
}

func TestScanStringExclusion(t *testing.T) {
	t.Parallel()

	input := []byte(`f("(((")`)
	tokens := []bracket.Token{
		{Start: 0, End: 2, Tags: nil},
		{Start: 2, End: 7, Tags: []string{"LiteralStringDouble"}},
		{Start: 7, End: 8, Tags: nil},
	}

	ranges := bracket.Scan(input, tokens, "go", bracket.DefaultOptions())

	assert.Equal(t, []int{1, 7}, offsets(ranges))
	assert.Equal(t, []int{0, 0}, levels(ranges))
}

func TestScanPreprocessorSuppression(t *testing.T) {
	t.Parallel()

	input := []byte("#if 0\nfoo(bar)\n#endif\n")

	t.Run("C-family input drops brackets in the dead branch", func(t *testing.T) {
		t.Parallel()
		ranges := bracket.Scan(input, nil, "c", bracket.DefaultOptions())
		assert.Empty(t, ranges)
	})

	t.Run("unknown language scans speculatively", func(t *testing.T) {
		t.Parallel()
		ranges := bracket.Scan(input, nil, "", bracket.DefaultOptions())
		assert.Empty(t, ranges)
	})

	t.Run("non-C languages keep the brackets", func(t *testing.T) {
		t.Parallel()
		ranges := bracket.Scan(input, nil, "go", bracket.DefaultOptions())
		assert.Equal(t, []int{9, 13}, offsets(ranges))
	})

	t.Run("NoPreprocessor keeps the brackets", func(t *testing.T) {
		t.Parallel()
		opts := bracket.DefaultOptions()
		opts.NoPreprocessor = true
		ranges := bracket.Scan(input, nil, "c", opts)
		assert.Equal(t, []int{9, 13}, offsets(ranges))
	})
}

func TestScanLevelCountFallback(t *testing.T) {
	t.Parallel()

	// A scan must never abort; a level count below 1 falls back to the
	// default rather than dividing by zero mid-scan.
	opts := bracket.Options{Kinds: bracket.AllKinds()}
	ranges := bracket.Scan([]byte("(((((((((()"), nil, "", opts)

	require.NotEmpty(t, ranges)
	assert.Equal(t, 0, ranges[9].Level, "depth 9 wraps at the default level count")
}

func TestScanEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bracket.Scan(nil, nil, "", bracket.DefaultOptions()))
	assert.Empty(t, bracket.Scan([]byte("no brackets here"), nil, "", bracket.DefaultOptions()))
}
