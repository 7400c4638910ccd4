// Package wasmast is a bidirectional codec for the WebAssembly binary
// module format: it decodes bytes into an abstract syntax tree and encodes
// that tree back into bytes.
package wasmast

import (
	"io"

	"github.com/misalcedo/wasm-ast/internal/wasm"
	"github.com/misalcedo/wasm-ast/internal/wasm/binary"
)

// Re-exported so callers never need to import the internal packages
// directly, the same narrow-facade shape wazero's own root package uses
// over its internal/wasm types.
type (
	Module             = wasm.Module
	Features           = wasm.Features
	Builder            = wasm.Builder
	Instruction        = wasm.Instruction
	Expression         = wasm.Expression
	FunctionType       = wasm.FunctionType
	ValueType          = wasm.ValueType
	ImportDescription  = wasm.ImportDescription
	ExportDescription  = wasm.ExportDescription
)

const (
	Features1_0 = wasm.Features1_0
	FeaturesAll = wasm.FeaturesAll
)

// NewBuilder returns a Builder for constructing a Module field by field.
func NewBuilder() *Builder { return wasm.NewBuilder() }

// ParseBinary decodes a complete Wasm binary module from b, accepting any
// encoding gated by the given feature set. Use FeaturesAll to accept every
// proposal this module understands, or Features1_0 to reject all of them.
func ParseBinary(b []byte, features Features) (*Module, error) {
	return binary.Decode(b, features)
}

// EmitBinary encodes m to w and returns the number of bytes written. The
// emitter is unconditional: it writes exactly what m contains regardless of
// which features were used to parse it.
func EmitBinary(m *Module, w io.Writer) (int, error) {
	cw := &countingSink{w: w}
	if err := binary.Encode(m, cw); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// countingSink wraps an io.Writer to report how many bytes EmitBinary wrote,
// mirroring the section framer's own counting-writer idiom at the
// whole-module granularity.
type countingSink struct {
	w io.Writer
	n int
}

func (c *countingSink) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
