package wasm

// Builder assembles a Module incrementally. Each Add method mirrors the
// corresponding Module method but accumulates the first error seen instead
// of returning one immediately, so a chain of builder calls can be written
// without checking an error after every step; Build reports it.
//
// The Rust source this module ports from stages entries behind an
// Indexed[T] wrapper and defers real work to a Build step that was never
// finished (it returned an empty Module unconditionally); this Builder
// finishes that job by delegating straight to Module's own import-aware
// index accounting, so a Builder and a Module built by direct field/Add-call
// assembly always produce identical index spaces.
type Builder struct {
	module *Module
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{module: NewModule()}
}

// Type declares a function type and returns its index.
func (b *Builder) Type(t FunctionType) (uint32, *Builder) {
	return b.module.AddType(t), b
}

// Function declares a defined function and returns its index in the
// combined function index space.
func (b *Builder) Function(f Function) (uint32, *Builder) {
	idx, err := b.module.AddFunction(f)
	b.fail(err)
	return idx, b
}

// Table declares a defined table and returns its index in the combined
// table index space.
func (b *Builder) Table(t Table) (uint32, *Builder) {
	idx, err := b.module.AddTable(t)
	b.fail(err)
	return idx, b
}

// Memory declares a defined memory and returns its index in the combined
// memory index space.
func (b *Builder) Memory(mem Memory) (uint32, *Builder) {
	idx, err := b.module.AddMemory(mem)
	b.fail(err)
	return idx, b
}

// Global declares a defined global and returns its index in the combined
// global index space.
func (b *Builder) Global(g Global) (uint32, *Builder) {
	idx, err := b.module.AddGlobal(g)
	b.fail(err)
	return idx, b
}

// Element declares an element segment and returns its index.
func (b *Builder) Element(e Element) (uint32, *Builder) {
	idx, err := b.module.AddElement(e)
	b.fail(err)
	return idx, b
}

// Data declares a data segment and returns its index.
func (b *Builder) Data(d Data) (uint32, *Builder) {
	idx, err := b.module.AddData(d)
	b.fail(err)
	return idx, b
}

// Import declares an import and returns its index within its own kind's
// index space.
func (b *Builder) Import(i Import) (uint32, *Builder) {
	idx, err := b.module.AddImport(i)
	b.fail(err)
	return idx, b
}

// Export declares an export.
func (b *Builder) Export(e Export) *Builder {
	b.module.AddExport(e)
	return b
}

// StartFunction sets the start function.
func (b *Builder) StartFunction(index uint32) *Builder {
	b.module.Start = &Start{Function: index}
	return b
}

// Custom declares a custom section at the given insertion point.
func (b *Builder) Custom(before SectionID, c Custom) *Builder {
	b.module.AddCustom(before, c)
	return b
}

// IncludeDataCount snapshots the current data-segment count into the
// data-count field, so Build produces a module that emits a DataCount
// section. Call this after every Data call it should account for.
func (b *Builder) IncludeDataCount() *Builder {
	b.module.IncludeDataCount()
	return b
}

func (b *Builder) fail(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// Build returns the assembled Module, or the first error encountered while
// assembling it.
func (b *Builder) Build() (*Module, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.module, nil
}
