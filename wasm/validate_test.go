package wasm

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/wippyai/watfreq/errors"
)

// validModule returns the smallest well-formed module with one empty
// function: type () -> (), function 0, body {end}.
func validModule() []byte {
	return module(
		section(1, []byte{0x01, 0x60, 0x00, 0x00}),
		section(3, []byte{0x01, 0x00}),
		codeSection([]byte{0x0B}),
	)
}

func TestValidateOK(t *testing.T) {
	if err := Validate(context.Background(), validModule()); err != nil {
		t.Fatalf("Validate failed on a well-formed module: %v", err)
	}
}

func TestValidateRejectsBadModule(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not wasm at all")},
		{"truncated", []byte{0x00, 0x61, 0x73, 0x6D, 0x01}},
		{
			// i32.add with an empty stack fails wazero's validation even
			// though our scanner decodes it without complaint.
			"type_error",
			module(
				section(1, []byte{0x01, 0x60, 0x00, 0x00}),
				section(3, []byte{0x01, 0x00}),
				codeSection([]byte{0x6A, 0x0B}),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(context.Background(), tt.data)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindInvalidData}) {
				t.Errorf("unexpected error shape: %v", err)
			}
		})
	}
}
