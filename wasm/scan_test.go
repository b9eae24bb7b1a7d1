package wasm

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/wippyai/watfreq/errors"
)

// uleb encodes v as unsigned LEB128.
func uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

func section(id byte, payload []byte) []byte {
	out := []byte{id}
	out = append(out, uleb(uint32(len(payload)))...)
	return append(out, payload...)
}

// codeSection wraps instruction streams into function bodies with no locals.
func codeSection(bodies ...[]byte) []byte {
	payload := uleb(uint32(len(bodies)))
	for _, instrs := range bodies {
		body := append([]byte{0x00}, instrs...) // empty locals vector
		payload = append(payload, uleb(uint32(len(body)))...)
		payload = append(payload, body...)
	}
	return section(sectionCode, payload)
}

func module(sections ...[]byte) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{"empty", nil, false},
		{"text", []byte("(module)"), false},
		{"magic_only", []byte{0x00, 0x61, 0x73, 0x6D}, true},
		{"full_header", module(), true},
		{"wrong_magic", []byte{0x00, 0x61, 0x73, 0x00, 0x01, 0x00, 0x00, 0x00}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.data); got != tt.expected {
				t.Errorf("IsBinary = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestInstructions(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected []string
	}{
		{
			"empty_module",
			module(),
			nil,
		},
		{
			"arithmetic",
			module(codeSection([]byte{
				0x41, 0x01, // i32.const 1
				0x41, 0x02, // i32.const 2
				0x6A, // i32.add
				0x0B, // end
			})),
			[]string{"i32.const", "i32.const", "i32.add", "end"},
		},
		{
			"memory_access",
			module(codeSection([]byte{
				0x41, 0x00, // i32.const 0
				0x28, 0x02, 0x00, // i32.load align=2 offset=0
				0x1A, // drop
				0x0B, // end
			})),
			[]string{"i32.const", "i32.load", "drop", "end"},
		},
		{
			"locals_and_call",
			module(codeSection([]byte{
				0x20, 0x00, // local.get 0
				0x21, 0x01, // local.set 1
				0x10, 0x00, // call 0
				0x0B, // end
			})),
			[]string{"local.get", "local.set", "call", "end"},
		},
		{
			"control_flow",
			module(codeSection([]byte{
				0x02, 0x40, // block (void)
				0x41, 0x01, // i32.const 1
				0x0D, 0x00, // br_if 0
				0x0B, // end (block)
				0x0B, // end (body)
			})),
			[]string{"block", "i32.const", "br_if", "end", "end"},
		},
		{
			"br_table",
			module(codeSection([]byte{
				0x02, 0x40, // block
				0x41, 0x00, // i32.const 0
				0x0E, 0x01, 0x00, 0x00, // br_table [0] default 0
				0x0B,
				0x0B,
			})),
			[]string{"block", "i32.const", "br_table", "end", "end"},
		},
		{
			"const_payloads",
			module(codeSection([]byte{
				0x42, 0x80, 0x01, // i64.const 128
				0x1A,                         // drop
				0x43, 0x00, 0x00, 0x80, 0x3F, // f32.const 1.0
				0x1A,                                                       // drop
				0x44, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F, // f64.const 1.0
				0x1A, // drop
				0x0B,
			})),
			[]string{"i64.const", "drop", "f32.const", "drop", "f64.const", "drop", "end"},
		},
		{
			"misc_prefix",
			module(codeSection([]byte{
				0x43, 0x00, 0x00, 0x80, 0x3F, // f32.const 1.0
				0xFC, 0x00, // i32.trunc_sat_f32_s
				0x1A, // drop
				0x0B,
			})),
			[]string{"f32.const", "i32.trunc_sat_f32_s", "drop", "end"},
		},
		{
			"bulk_memory",
			module(codeSection([]byte{
				0x41, 0x00, 0x41, 0x00, 0x41, 0x00, // three i32.const 0
				0xFC, 0x0A, 0x00, 0x00, // memory.copy
				0x0B,
			})),
			[]string{"i32.const", "i32.const", "i32.const", "memory.copy", "end"},
		},
		{
			"non_code_sections_skipped",
			module(
				section(0, []byte{0x04, 'n', 'a', 'm', 'e'}), // custom
				section(1, []byte{0x01, 0x60, 0x00, 0x00}),   // type
				section(3, []byte{0x01, 0x00}),               // function
				codeSection([]byte{0x01, 0x0B}),              // nop, end
			),
			[]string{"nop", "end"},
		},
		{
			"multiple_bodies",
			module(codeSection(
				[]byte{0x41, 0x01, 0x1A, 0x0B},
				[]byte{0x01, 0x0B},
			)),
			[]string{"i32.const", "drop", "end", "nop", "end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Instructions(tt.data)
			if err != nil {
				t.Fatalf("Instructions failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Instructions = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestInstructionsErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want *errors.Error
	}{
		{
			"not_binary",
			[]byte("(module)"),
			&errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData},
		},
		{
			"unknown_opcode",
			module(codeSection([]byte{0xF9, 0x0B})),
			&errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData},
		},
		{
			"simd_unsupported",
			module(codeSection([]byte{0xFD, 0x00, 0x0B})),
			&errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnsupported},
		},
		{
			"atomics_unsupported",
			module(codeSection([]byte{0xFE, 0x00, 0x0B})),
			&errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnsupported},
		},
		{
			"truncated_body",
			module(section(sectionCode, []byte{0x01, 0x7F})), // body claims 127 bytes
			&errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Instructions(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, tt.want) {
				t.Errorf("error %v, want phase %s kind %s", err, tt.want.Phase, tt.want.Kind)
			}
		})
	}
}
