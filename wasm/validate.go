package wasm

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/watfreq/errors"
)

// Validate compiles data with wazero and reports the first validation
// failure. The module is never instantiated, so imports do not need to
// resolve and no guest code runs.
func Validate(ctx context.Context, data []byte) error {
	cfg := wazero.NewRuntimeConfigInterpreter().WithCoreFeatures(api.CoreFeaturesV2)
	r := wazero.NewRuntimeWithConfig(ctx, cfg)
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		return errors.Wrap(errors.PhaseValidate, errors.KindInvalidData, err, "compile module")
	}
	return compiled.Close(ctx)
}
