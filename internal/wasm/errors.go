package wasm

// IndexOverflowError is returned when appending to an index space would
// require an index wider than 32 bits to address.
type IndexOverflowError struct{}

func (e *IndexOverflowError) Error() string {
	return "wasm: index space overflow: index no longer fits in 32 bits"
}
