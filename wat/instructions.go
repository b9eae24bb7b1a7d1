package wat

import (
	"strings"

	"github.com/wippyai/watfreq/analyzer"
)

// Instructions returns the dotted operator mnemonics in source, in order of
// appearance, ready for analyzer.AnalyzeTokens. Tokens inside comments and
// string literals never appear, and $names are excluded even when their tail
// looks dotted.
func Instructions(source string) []analyzer.Token {
	var out []analyzer.Token
	for _, tok := range Tokenize(source) {
		if tok.Type != Ident || !isMnemonic(tok.Value) {
			continue
		}
		out = append(out, analyzer.Token{Value: tok.Value, Line: tok.Line})
	}
	return out
}

// isMnemonic reports whether value has the <class>.<op> operator shape:
// exactly one dot, both parts non-empty and limited to lowercase letters,
// digits and underscores.
func isMnemonic(value string) bool {
	dot := strings.IndexByte(value, '.')
	if dot <= 0 || dot == len(value)-1 {
		return false
	}
	if strings.IndexByte(value[dot+1:], '.') >= 0 {
		return false
	}
	for i := 0; i < len(value); i++ {
		if i == dot {
			continue
		}
		c := value[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
