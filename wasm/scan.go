package wasm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wippyai/watfreq/errors"
)

// Binary format framing.
const (
	headerSize  = 8 // magic + version
	sectionCode = 10

	prefixGC     byte = 0xFB
	prefixMisc   byte = 0xFC
	prefixSIMD   byte = 0xFD
	prefixAtomic byte = 0xFE
)

var magic = []byte{0x00, 0x61, 0x73, 0x6D} // "\0asm"

// IsBinary reports whether data begins with the WASM binary magic number.
// Input dispatch keys off this, not the file extension.
func IsBinary(data []byte) bool {
	return len(data) >= len(magic) && bytes.Equal(data[:len(magic)], magic)
}

// Instructions walks every function body in data's code section and returns
// the instruction mnemonics in decode order. Sections other than the code
// section are skipped wholesale.
func Instructions(data []byte) ([]string, error) {
	if !IsBinary(data) {
		return nil, errors.InvalidData(errors.PhaseDecode, nil, "missing \\0asm magic")
	}
	if len(data) < headerSize {
		return nil, errors.InvalidData(errors.PhaseDecode, nil, "truncated header")
	}

	r := bytes.NewReader(data[headerSize:])
	var names []string
	for {
		id, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, decodeFailed("section id", err)
		}
		size, err := ReadUint32(r)
		if err != nil {
			return nil, decodeFailed("section size", err)
		}

		if id != sectionCode {
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return nil, decodeFailed("section skip", err)
			}
			continue
		}

		count, err := ReadUint32(r)
		if err != nil {
			return nil, decodeFailed("function count", err)
		}
		for f := uint32(0); f < count; f++ {
			bodySize, err := ReadUint32(r)
			if err != nil {
				return nil, decodeFailed("body size", err)
			}
			body := make([]byte, bodySize)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Path("code", fmt.Sprintf("body %d", f)).
					Detail("truncated function body").
					Cause(err).
					Build()
			}
			ns, err := scanBody(body, f)
			if err != nil {
				return nil, err
			}
			names = append(names, ns...)
		}
	}
	return names, nil
}

func decodeFailed(what string, cause error) *errors.Error {
	return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, cause, what)
}

// scanBody decodes one function body: the locals vector, then instructions
// until the body bytes run out.
func scanBody(body []byte, index uint32) ([]string, error) {
	r := bytes.NewReader(body)
	path := []string{"code", fmt.Sprintf("body %d", index)}

	declCount, err := ReadUint32(r)
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(path...).Detail("locals vector").Cause(err).Build()
	}
	for i := uint32(0); i < declCount; i++ {
		if _, err := ReadUint32(r); err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(path...).Detail("locals count").Cause(err).Build()
		}
		if _, err := r.ReadByte(); err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(path...).Detail("locals type").Cause(err).Build()
		}
	}

	var names []string
	for r.Len() > 0 {
		op, err := r.ReadByte()
		if err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(path...).Detail("opcode").Cause(err).Build()
		}

		switch op {
		case prefixMisc:
			sub, err := ReadUint32(r)
			if err != nil {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Path(path...).Detail("misc sub-opcode").Cause(err).Build()
			}
			name, ok := miscNames[sub]
			if !ok {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Path(path...).Detail("unknown misc opcode 0xfc %d", sub).Build()
			}
			names = append(names, name)
			if err := skipMiscImmediate(r, sub); err != nil {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Path(path...).Detail("%s immediate", name).Cause(err).Build()
			}

		case prefixSIMD:
			return nil, errors.Unsupported(errors.PhaseDecode, "SIMD instructions")
		case prefixAtomic:
			return nil, errors.Unsupported(errors.PhaseDecode, "atomic instructions")
		case prefixGC:
			return nil, errors.Unsupported(errors.PhaseDecode, "GC instructions")

		default:
			name, ok := opcodeNames[op]
			if !ok {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Path(path...).Detail("unknown opcode 0x%02x", op).Build()
			}
			names = append(names, name)
			if err := skipImmediate(r, op); err != nil {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Path(path...).Detail("%s immediate", name).Cause(err).Build()
			}
		}
	}
	return names, nil
}

// skipImmediate consumes the immediate bytes of a single-byte opcode.
func skipImmediate(r *bytes.Reader, op byte) error {
	switch op {
	case 0x02, 0x03, 0x04: // block, loop, if: s33 block type
		_, err := ReadInt64(r)
		return err

	case 0x0C, 0x0D, 0x10, 0x12, // br, br_if, call, return_call
		0x20, 0x21, 0x22, 0x23, 0x24, // local.*, global.*
		0x25, 0x26, // table.get, table.set
		0x3F, 0x40, // memory.size, memory.grow
		0xD2: // ref.func
		_, err := ReadUint32(r)
		return err

	case 0x0E: // br_table: label vector + default
		n, err := ReadUint32(r)
		if err != nil {
			return err
		}
		for i := uint32(0); i <= n; i++ {
			if _, err := ReadUint32(r); err != nil {
				return err
			}
		}
		return nil

	case 0x11, 0x13: // call_indirect, return_call_indirect: type + table
		if _, err := ReadUint32(r); err != nil {
			return err
		}
		_, err := ReadUint32(r)
		return err

	case 0x1C: // typed select: valtype vector
		n, err := ReadUint32(r)
		if err != nil {
			return err
		}
		for i := uint32(0); i < n; i++ {
			if _, err := r.ReadByte(); err != nil {
				return err
			}
		}
		return nil

	case 0x41: // i32.const
		_, err := ReadInt32(r)
		return err
	case 0x42: // i64.const
		_, err := ReadInt64(r)
		return err
	case 0x43: // f32.const
		return skipBytes(r, 4)
	case 0x44: // f64.const
		return skipBytes(r, 8)

	case 0xD0: // ref.null: s33 heap type
		_, err := ReadInt64(r)
		return err
	}

	if op >= 0x28 && op <= 0x3E { // loads and stores: align + offset
		if _, err := ReadUint32(r); err != nil {
			return err
		}
		_, err := ReadUint64(r)
		return err
	}
	return nil
}

// skipMiscImmediate consumes the immediate bytes of a 0xFC sub-opcode.
func skipMiscImmediate(r *bytes.Reader, sub uint32) error {
	switch sub {
	case 8: // memory.init: data index + memory index
		if _, err := ReadUint32(r); err != nil {
			return err
		}
		return skipBytes(r, 1)
	case 9, 13, 15, 16, 17: // data.drop, elem.drop, table.grow/size/fill
		_, err := ReadUint32(r)
		return err
	case 10: // memory.copy: two memory indexes
		return skipBytes(r, 2)
	case 11: // memory.fill: memory index
		return skipBytes(r, 1)
	case 12, 14: // table.init, table.copy: two indexes
		if _, err := ReadUint32(r); err != nil {
			return err
		}
		_, err := ReadUint32(r)
		return err
	}
	return nil // trunc_sat family: no immediate
}

func skipBytes(r *bytes.Reader, n int) error {
	for i := 0; i < n; i++ {
		if _, err := r.ReadByte(); err != nil {
			return err
		}
	}
	return nil
}
