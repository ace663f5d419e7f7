package bracket_test

import (
	"testing"

	"github.com/yaklabco/gobrackets/pkg/bracket"
)

// FuzzScan fuzzes the scanner with random input.
func FuzzScan(f *testing.F) {
	seeds := []string{
		"",
		"((()))",
		"{[()]}",
		")",
		"(]",
		"(((",
		"a < b",
		"List<Item>",
		"Map<K, List<V>>",
		"x << 2 >> 1",
		"p->next",
		"#if 0\nfoo(bar)\n#endif\n",
		"#if defined(FOO)\n#elif BAR\n#else\n#endif\n",
		"func f(a []int) map[string]int { return nil }",
		"line1\r\nline2\r\n",
		"\x00\xff<>(){}[]",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Scan must never panic, for any language id or level count.
		for _, langID := range []string{"", "c", "go"} {
			for _, levelCount := range []int{-1, 0, 1, 2, 9} {
				opts := bracket.DefaultOptions()
				opts.LevelCount = levelCount

				ranges := bracket.Scan(data, nil, langID, opts)

				// Ranges are single characters in ascending offset order.
				prev := -1
				for _, r := range ranges {
					if r.End != r.Start+1 {
						t.Errorf("range %v is not a single character", r)
					}
					if r.Start <= prev {
						t.Errorf("range %v out of order after offset %d", r, prev)
					}
					if r.Level < 0 {
						t.Errorf("range %v has negative level", r)
					}
					prev = r.Start
				}
			}
		}
	})
}

// FuzzInactiveRanges fuzzes the preprocessor scanner with random input.
func FuzzInactiveRanges(f *testing.F) {
	seeds := []string{
		"",
		"#if 0\nx\n#endif\n",
		"#define A\n#if !A\nx\n#endif",
		"#else\n#endif\n#elif\n",
		"#if\n#if\n#if\n",
		"  #  ifdef  X  \nbody\n  #  endif  \n",
		"#if 0\r\nx\r\n#endif\r\n",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		ranges := bracket.InactiveRanges(data)

		// Sorted, non-overlapping, within bounds.
		prevEnd := -1
		for _, r := range ranges {
			if r.Start > r.End {
				t.Errorf("range %v is inverted", r)
			}
			if r.Start <= prevEnd {
				t.Errorf("range %v overlaps previous end %d", r, prevEnd)
			}
			if r.End >= len(data) {
				t.Errorf("range %v exceeds input length %d", r, len(data))
			}
			prevEnd = r.End
		}
	})
}
