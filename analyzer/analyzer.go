package analyzer

import "go.uber.org/zap"

// DefaultLength is the window length used when Options.Length is not set.
const DefaultLength = 5

// Options configure a frequency analysis.
type Options struct {
	// Length is the window length N. Values <= 0 fall back to DefaultLength.
	Length int

	// Exact restricts the analysis to full N-token windows. When false the
	// window bound is the legacy one: max(0, tokens-2) windows regardless
	// of N, with trailing windows running short.
	Exact bool
}

func (o Options) length() int {
	if o.Length <= 0 {
		return DefaultLength
	}
	return o.Length
}

// Analyze runs the full pipeline over raw text: extract, window, count, sort.
// It never fails; input without operator matches yields an empty report.
func Analyze(text string, opts Options) *Report {
	return AnalyzeTokens(ExtractTokens(text), opts)
}

// AnalyzeTokens runs the pipeline over pre-extracted tokens.
func AnalyzeTokens(tokens []Token, opts Options) *Report {
	windows := Windows(tokens, opts)

	counts := make(map[string]int, len(windows))
	first := make(map[string]int, len(windows))
	for i, w := range windows {
		if _, seen := counts[w]; !seen {
			first[w] = i
		}
		counts[w]++
	}

	report := &Report{
		Entries:     make([]Entry, 0, len(counts)),
		TokenCount:  len(tokens),
		WindowCount: len(windows),
	}
	for seq, count := range counts {
		report.Entries = append(report.Entries, Entry{
			Sequence: seq,
			Count:    count,
			first:    first[seq],
		})
	}
	report.Sort()

	Logger().Debug("analysis complete",
		zap.Int("length", opts.length()),
		zap.Int("tokens", report.TokenCount),
		zap.Int("windows", report.WindowCount),
		zap.Int("distinct", len(report.Entries)))

	return report
}
