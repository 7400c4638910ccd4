package binary

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/misalcedo/wasm-ast/internal/leb128"
	"github.com/misalcedo/wasm-ast/internal/wasm"
)

// countingWriter counts the bytes written to it without storing them. The
// section framer renders a section's payload into one of these first to
// learn its length, then renders it again into the real output — the same
// counting-sink approach the format's own reference emitter uses instead of
// back-patching a length field in place.
type countingWriter struct{ n int64 }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// Encoder writes the binary encoding of wasm-ast values to an underlying
// io.Writer.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

func (e *Encoder) write(p []byte) error {
	_, err := e.w.Write(p)
	return err
}

// Byte writes a single raw byte.
func (e *Encoder) Byte(b byte) error { return e.write([]byte{b}) }

// Bytes writes raw bytes with no length prefix.
func (e *Encoder) Bytes(p []byte) error { return e.write(p) }

// Name writes a length-prefixed UTF-8 string.
func (e *Encoder) Name(s string) error {
	if err := e.U32(uint32(len(s))); err != nil {
		return err
	}
	return e.write([]byte(s))
}

// VectorBytes writes a length-prefixed byte vector.
func (e *Encoder) VectorBytes(p []byte) error {
	if err := e.U32(uint32(len(p))); err != nil {
		return err
	}
	return e.write(p)
}

// U32 writes an unsigned LEB128 u32.
func (e *Encoder) U32(v uint32) error { return e.write(leb128.EncodeUint32(v)) }

// U64 writes an unsigned LEB128 u64.
func (e *Encoder) U64(v uint64) error { return e.write(leb128.EncodeUint64(v)) }

// I32 writes a signed LEB128 i32.
func (e *Encoder) I32(v int32) error { return e.write(leb128.EncodeInt32(v)) }

// I64 writes a signed LEB128 i64.
func (e *Encoder) I64(v int64) error { return e.write(leb128.EncodeInt64(v)) }

// F32 writes a raw little-endian IEEE-754 single.
func (e *Encoder) F32(v float32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	return e.write(buf[:])
}

// F64 writes a raw little-endian IEEE-754 double.
func (e *Encoder) F64(v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return e.write(buf[:])
}

// Vector writes a u32 length followed by calling emit n times, the shape
// used for every indexed section vector (types, imports, functions, ...).
func (e *Encoder) Vector(n int, emit func(i int) error) error {
	if err := e.U32(uint32(n)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := emit(i); err != nil {
			return err
		}
	}
	return nil
}

// Repeated calls emit n times with no length prefix. No encoder in this
// package calls it: locals are written with Vector, and expression
// instruction streams are 0x0B-terminated, not length-prefixed.
func (e *Encoder) Repeated(n int, emit func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := emit(i); err != nil {
			return err
		}
	}
	return nil
}

// Decoder reads the binary encoding of wasm-ast values from a
// *bytes.Reader. Offset reports the position within that reader; Decode
// gives each section its own Decoder over the section's payload.
type Decoder struct {
	r        *bytes.Reader
	Features wasm.Features
}

// NewDecoder returns a Decoder over r scoped to the given feature set.
func NewDecoder(r *bytes.Reader, features wasm.Features) *Decoder {
	return &Decoder{r: r, Features: features}
}

// Offset returns how many bytes have been consumed from the start of the
// input so far.
func (d *Decoder) Offset() int64 { return d.r.Size() - int64(d.r.Len()) }

// Remaining returns how many bytes are left unconsumed.
func (d *Decoder) Remaining() int64 { return int64(d.r.Len()) }

// Byte reads a single raw byte.
func (d *Decoder) Byte() (byte, error) { return d.r.ReadByte() }

// PeekByte returns the next byte without consuming it.
func (d *Decoder) PeekByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, err
	}
	return b, d.r.UnreadByte()
}

// Bytes reads n raw bytes with no length prefix.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Name reads a length-prefixed UTF-8 string, rejecting content that is not
// valid UTF-8.
func (d *Decoder) Name() (string, error) {
	n, err := d.U32()
	if err != nil {
		return "", err
	}
	buf, err := d.Bytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// VectorBytes reads a length-prefixed byte vector.
func (d *Decoder) VectorBytes() ([]byte, error) {
	n, err := d.U32()
	if err != nil {
		return nil, err
	}
	return d.Bytes(int(n))
}

// U32 reads an unsigned LEB128 u32.
func (d *Decoder) U32() (uint32, error) {
	v, _, err := leb128.DecodeUint32(d.r)
	return v, err
}

// U64 reads an unsigned LEB128 u64.
func (d *Decoder) U64() (uint64, error) {
	v, _, err := leb128.DecodeUint64(d.r)
	return v, err
}

// I32 reads a signed LEB128 i32.
func (d *Decoder) I32() (int32, error) {
	v, _, err := leb128.DecodeInt32(d.r)
	return v, err
}

// I64 reads a signed LEB128 i64.
func (d *Decoder) I64() (int64, error) {
	v, _, err := leb128.DecodeInt64(d.r)
	return v, err
}

// I33 reads a signed LEB128 integer of at most 33 significant bits, the
// width used by a block type's inline type-index reference.
func (d *Decoder) I33() (int64, error) {
	v, _, err := leb128.DecodeInt33AsInt64(d.r)
	return v, err
}

// F32 reads a raw little-endian IEEE-754 single.
func (d *Decoder) F32() (float32, error) {
	buf, err := d.Bytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
}

// F64 reads a raw little-endian IEEE-754 double.
func (d *Decoder) F64() (float64, error) {
	buf, err := d.Bytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// Vector reads a u32 length then calls parse that many times.
func (d *Decoder) Vector(parse func(i int) error) (int, error) {
	n, err := d.U32()
	if err != nil {
		return 0, err
	}
	for i := 0; i < int(n); i++ {
		if err := parse(i); err != nil {
			return i, err
		}
	}
	return int(n), nil
}
