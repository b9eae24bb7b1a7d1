package wat

// Type classifies a lexical token.
type Type int

const (
	LParen Type = iota
	RParen
	Ident
	String
	Number
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case Number:
		return "number"
	}
	return "unknown"
}

// Token is one lexical token with its 1-based source line.
type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits WAT source into tokens. Whitespace, line comments and
// nested block comments are skipped; string literal values are returned
// without their quotes and with escapes left as written.
func Tokenize(source string) []Token {
	var tokens []Token
	line := 1

	for i := 0; i < len(source); i++ {
		c := source[i]

		switch {
		case c == '\n':
			line++

		case c == ' ' || c == '\t' || c == '\r':

		case c == ';' && i+1 < len(source) && source[i+1] == ';':
			for i < len(source) && source[i] != '\n' {
				i++
			}
			i-- // the loop body counts the newline

		case c == ';': // stray semicolon, not valid WAT; skip it

		case c == '(':
			if i+1 < len(source) && source[i+1] == ';' {
				depth := 1
				i += 2
				for i < len(source) && depth > 0 {
					switch {
					case source[i] == '(' && i+1 < len(source) && source[i+1] == ';':
						depth++
						i++
					case source[i] == ';' && i+1 < len(source) && source[i+1] == ')':
						depth--
						i++
					case source[i] == '\n':
						line++
					}
					i++
				}
				i--
				continue
			}
			tokens = append(tokens, Token{"(", LParen, line})

		case c == ')':
			tokens = append(tokens, Token{")", RParen, line})

		case c == '"':
			start := i + 1
			i++
			for i < len(source) && source[i] != '"' {
				if source[i] == '\\' {
					i++
				}
				i++
			}
			end := i
			if end > len(source) {
				end = len(source)
			}
			tokens = append(tokens, Token{source[start:end], String, line})

		default:
			// Everything else runs to the next delimiter; WAT tokens are
			// separated by whitespace, parens, quotes or comments.
			start := i
			for i < len(source) && !isDelim(source[i]) {
				i++
			}
			value := source[start:i]
			i--

			kind := Ident
			if isNumberStart(value) {
				kind = Number
			}
			tokens = append(tokens, Token{value, kind, line})
		}
	}

	return tokens
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', ';':
		return true
	}
	return false
}

func isNumberStart(value string) bool {
	if value == "" {
		return false
	}
	c := value[0]
	if c == '+' || c == '-' {
		if len(value) == 1 {
			return false
		}
		c = value[1]
	}
	return c >= '0' && c <= '9'
}
