package analyzer

import "strings"

// Windows builds the sliding window strings over tokens. The step is always
// 1, so consecutive windows overlap. Each window's token values are joined
// by single spaces.
//
// With the default (legacy) bound, start indexes run over [0, len-2)
// independent of the window length: for N > 3 the trailing windows run
// short, for N < 3 valid full windows at the end are skipped, and fewer than
// 3 tokens yield no windows at all. With Options.Exact the start indexes run
// over [0, len-N] and every window holds exactly N tokens.
func Windows(tokens []Token, opts Options) []string {
	n := opts.length()
	limit := len(tokens) - 2
	if opts.Exact {
		limit = len(tokens) - n + 1
	}
	if limit <= 0 {
		return nil
	}

	windows := make([]string, 0, limit)
	var b strings.Builder
	for i := 0; i < limit; i++ {
		end := i + n
		if end > len(tokens) {
			end = len(tokens)
		}
		b.Reset()
		for j := i; j < end; j++ {
			if j > i {
				b.WriteByte(' ')
			}
			b.WriteString(tokens[j].Value)
		}
		windows = append(windows, b.String())
	}
	return windows
}
