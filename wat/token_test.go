package wat

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			"empty",
			"",
			nil,
		},
		{
			"parens",
			"()",
			[]Token{{"(", LParen, 1}, {")", RParen, 1}},
		},
		{
			"module",
			"(module)",
			[]Token{{"(", LParen, 1}, {"module", Ident, 1}, {")", RParen, 1}},
		},
		{
			"whitespace",
			"  (  module  )  ",
			[]Token{{"(", LParen, 1}, {"module", Ident, 1}, {")", RParen, 1}},
		},
		{
			"newlines",
			"(\nmodule\n)",
			[]Token{{"(", LParen, 1}, {"module", Ident, 2}, {")", RParen, 3}},
		},
		{
			"dollar_name",
			"$foo",
			[]Token{{"$foo", Ident, 1}},
		},
		{
			"dotted_mnemonic",
			"i32.const",
			[]Token{{"i32.const", Ident, 1}},
		},
		{
			"number",
			"42",
			[]Token{{"42", Number, 1}},
		},
		{
			"negative_number",
			"-42",
			[]Token{{"-42", Number, 1}},
		},
		{
			"hex_number",
			"0xFF",
			[]Token{{"0xFF", Number, 1}},
		},
		{
			"float",
			"3.14",
			[]Token{{"3.14", Number, 1}},
		},
		{
			"string",
			`"hello"`,
			[]Token{{"hello", String, 1}},
		},
		{
			"string_escape",
			`"a\"b"`,
			[]Token{{`a\"b`, String, 1}},
		},
		{
			"offset_align",
			"offset=4 align=2",
			[]Token{{"offset=4", Ident, 1}, {"align=2", Ident, 1}},
		},
		{
			"stray_semicolon",
			"; module ;",
			[]Token{{"module", Ident, 1}},
		},
		{
			"line_comment",
			";; comment\n(module)",
			[]Token{{"(", LParen, 2}, {"module", Ident, 2}, {")", RParen, 2}},
		},
		{
			"line_comment_at_eof",
			"(module) ;; trailing",
			[]Token{{"(", LParen, 1}, {"module", Ident, 1}, {")", RParen, 1}},
		},
		{
			"block_comment",
			"(; comment ;)(module)",
			[]Token{{"(", LParen, 1}, {"module", Ident, 1}, {")", RParen, 1}},
		},
		{
			"nested_block_comment",
			"(; outer (; inner ;) outer ;)(module)",
			[]Token{{"(", LParen, 1}, {"module", Ident, 1}, {")", RParen, 1}},
		},
		{
			"block_comment_counts_lines",
			"(;\n\n;)\nmodule",
			[]Token{{"module", Ident, 4}},
		},
		{
			"instruction_sequence",
			"local.get 0\ni32.const 7\ni32.add",
			[]Token{
				{"local.get", Ident, 1}, {"0", Number, 1},
				{"i32.const", Ident, 2}, {"7", Number, 2},
				{"i32.add", Ident, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
