package analyzer

import (
	"regexp"
	"strings"
)

// operatorPattern matches dotted WAT mnemonics such as i32.add or local.get.
var operatorPattern = regexp.MustCompile(`\b[a-z0-9_]+\.[a-z0-9_]+\b`)

// Token is one operator occurrence in the input text.
type Token struct {
	Value string
	Line  int
}

// ExtractTokens scans text left to right and returns every non-overlapping
// operator match in order of appearance. Line numbers are 1-based. The scan
// is purely lexical: matches inside comments and string literals count too.
func ExtractTokens(text string) []Token {
	matches := operatorPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	line := 1
	prev := 0
	for _, loc := range matches {
		line += strings.Count(text[prev:loc[0]], "\n")
		prev = loc[0]
		tokens = append(tokens, Token{Value: text[loc[0]:loc[1]], Line: line})
	}
	return tokens
}
