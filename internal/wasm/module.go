package wasm

// SectionID is a non-custom section's id byte. Custom sections always use
// id 0 and carry their own Name instead.
type SectionID = byte

const (
	SectionIDCustom    SectionID = 0
	SectionIDType      SectionID = 1
	SectionIDImport    SectionID = 2
	SectionIDFunction  SectionID = 3
	SectionIDTable     SectionID = 4
	SectionIDMemory    SectionID = 5
	SectionIDGlobal    SectionID = 6
	SectionIDExport    SectionID = 7
	SectionIDStart     SectionID = 8
	SectionIDElement   SectionID = 9
	SectionIDCode      SectionID = 10
	SectionIDData      SectionID = 11
	SectionIDDataCount SectionID = 12
)

// Function is a defined (non-imported) function: its signature reference,
// its locals (grouped by the builder but stored flat here since the AST
// does not need the binary's run-length grouping), and its decoded body.
type Function struct {
	Type   uint32
	Locals ResultType
	Body   Expression
}

// NewFunction builds a Function from its type index, locals, and body.
func NewFunction(typeIndex uint32, locals ResultType, body Expression) Function {
	return Function{Type: typeIndex, Locals: locals, Body: body}
}

// Table is a defined (non-imported) table.
type Table struct {
	Type TableType
}

// NewTable wraps a TableType as a defined Table.
func NewTable(t TableType) Table { return Table{Type: t} }

// Memory is a defined (non-imported) linear memory.
type Memory struct {
	Type MemoryType
}

// NewMemory wraps a MemoryType as a defined Memory.
func NewMemory(t MemoryType) Memory { return Memory{Type: t} }

// Global is a defined (non-imported) global variable with its constant
// initializer expression.
type Global struct {
	Type        GlobalType
	Initializer Expression
}

// NewGlobal builds a Global.
func NewGlobal(t GlobalType, initializer Expression) Global {
	return Global{Type: t, Initializer: initializer}
}

// MutableGlobal builds a mutable Global.
func MutableGlobal(valueType ValueType, initializer Expression) Global {
	return NewGlobal(NewGlobalType(valueType, true), initializer)
}

// ImmutableGlobal builds an immutable Global.
func ImmutableGlobal(valueType ValueType, initializer Expression) Global {
	return NewGlobal(NewGlobalType(valueType, false), initializer)
}

// ElementMode selects how an Element segment is realized: copied into a
// table at instantiation (Active), left for table.init (Passive), or
// reserved for reference-taking only and never copied anywhere
// (Declarative).
type ElementMode interface {
	isElementMode()
}

type ElementModeActive struct {
	Table  uint32
	Offset Expression
}

type ElementModePassive struct{}

type ElementModeDeclarative struct{}

func (ElementModeActive) isElementMode()      {}
func (ElementModePassive) isElementMode()     {}
func (ElementModeDeclarative) isElementMode() {}

// Element is a table element segment. Initializers holds either plain
// function indices (the compact encoding) or general constant expressions
// (the extended encoding); the binary codec chooses the tag byte from
// which shape Initializers is and from Mode.
type Element struct {
	Type         ReferenceType
	Mode         ElementMode
	Initializers []Expression
}

// NewPassiveElement builds a passive Element.
func NewPassiveElement(kind ReferenceType, initializers []Expression) Element {
	return Element{Type: kind, Mode: ElementModePassive{}, Initializers: initializers}
}

// NewActiveElement builds an active Element targeting the given table at
// the given constant offset.
func NewActiveElement(table uint32, offset Expression, kind ReferenceType, initializers []Expression) Element {
	return Element{Type: kind, Mode: ElementModeActive{Table: table, Offset: offset}, Initializers: initializers}
}

// NewDeclarativeElement builds a declarative Element.
func NewDeclarativeElement(kind ReferenceType, initializers []Expression) Element {
	return Element{Type: kind, Mode: ElementModeDeclarative{}, Initializers: initializers}
}

// FunctionIndexInitializers reports whether every initializer in es is a
// single ReferenceFunction instruction, the shape that allows the compact
// funcidx-vector encoding instead of a vector of full expressions.
func FunctionIndexInitializers(es []Expression) ([]uint32, bool) {
	indices := make([]uint32, 0, len(es))
	for _, e := range es {
		if len(e.Instructions) != 1 {
			return nil, false
		}
		ref, ok := e.Instructions[0].(ReferenceFunction)
		if !ok {
			return nil, false
		}
		indices = append(indices, ref.Index)
	}
	return indices, true
}

// DataMode selects how a Data segment is realized: copied into memory at
// instantiation (Active) or left for memory.init (Passive).
type DataMode interface {
	isDataMode()
}

type DataModeActive struct {
	Memory uint32
	Offset Expression
}

type DataModePassive struct{}

func (DataModeActive) isDataMode()  {}
func (DataModePassive) isDataMode() {}

// Data is a memory data segment.
type Data struct {
	Mode  DataMode
	Bytes []byte
}

// NewPassiveData builds a passive Data segment.
func NewPassiveData(bytes []byte) Data {
	return Data{Mode: DataModePassive{}, Bytes: bytes}
}

// NewActiveData builds an active Data segment targeting the given memory
// at the given constant offset.
func NewActiveData(memory uint32, offset Expression, bytes []byte) Data {
	return Data{Mode: DataModeActive{Memory: memory, Offset: offset}, Bytes: bytes}
}

// ImportDescription is the typed payload of an Import, tagging which of the
// four external kinds is being imported.
type ImportDescription interface {
	isImportDescription()
	ExternType() ExternType
}

type ImportDescriptionFunction struct{ Type uint32 }
type ImportDescriptionTable struct{ Type TableType }
type ImportDescriptionMemory struct{ Type MemoryType }
type ImportDescriptionGlobal struct{ Type GlobalType }

func (ImportDescriptionFunction) isImportDescription() {}
func (ImportDescriptionTable) isImportDescription()    {}
func (ImportDescriptionMemory) isImportDescription()   {}
func (ImportDescriptionGlobal) isImportDescription()   {}

func (ImportDescriptionFunction) ExternType() ExternType { return ExternTypeFunc }
func (ImportDescriptionTable) ExternType() ExternType    { return ExternTypeTable }
func (ImportDescriptionMemory) ExternType() ExternType   { return ExternTypeMemory }
func (ImportDescriptionGlobal) ExternType() ExternType   { return ExternTypeGlobal }

// Import is a two-level (module, name) imported external value.
type Import struct {
	Module      string
	Name        string
	Description ImportDescription
}

// ExportDescription is the typed payload of an Export, referencing a
// defined or imported external value by its index within that kind's
// combined (imports-then-definitions) index space.
type ExportDescription interface {
	isExportDescription()
	ExternType() ExternType
	Index() uint32
}

type ExportDescriptionFunction struct{ Idx uint32 }
type ExportDescriptionTable struct{ Idx uint32 }
type ExportDescriptionMemory struct{ Idx uint32 }
type ExportDescriptionGlobal struct{ Idx uint32 }

func (ExportDescriptionFunction) isExportDescription() {}
func (ExportDescriptionTable) isExportDescription()    {}
func (ExportDescriptionMemory) isExportDescription()   {}
func (ExportDescriptionGlobal) isExportDescription()   {}

func (ExportDescriptionFunction) ExternType() ExternType { return ExternTypeFunc }
func (ExportDescriptionTable) ExternType() ExternType    { return ExternTypeTable }
func (ExportDescriptionMemory) ExternType() ExternType   { return ExternTypeMemory }
func (ExportDescriptionGlobal) ExternType() ExternType   { return ExternTypeGlobal }

func (e ExportDescriptionFunction) Index() uint32 { return e.Idx }
func (e ExportDescriptionTable) Index() uint32    { return e.Idx }
func (e ExportDescriptionMemory) Index() uint32   { return e.Idx }
func (e ExportDescriptionGlobal) Index() uint32   { return e.Idx }

// Export is a named external value visible to a module's embedder.
type Export struct {
	Name        string
	Description ExportDescription
}

// Start names the function invoked automatically at instantiation.
type Start struct {
	Function uint32
}

// Custom is a custom (id-0) section: an opaque name/content pair that the
// codec neither interprets nor validates, re-emitted byte for byte.
type Custom struct {
	Name    string
	Content []byte
}

// Module is the fully decoded abstract syntax tree of a Wasm binary module:
// one slice per index space plus the custom sections, kept at the
// positions ("insertion points") where they appeared between the 12
// standard sections in the source binary.
type Module struct {
	FunctionTypes []FunctionType
	Functions     []Function
	Tables        []Table
	Memories      []Memory
	Globals       []Global
	Elements      []Element
	Data          []Data
	Start         *Start
	Imports       []Import
	Exports       []Export

	// DataCount is the data-count field: present only if the module was
	// parsed from (or asked to include, via IncludeDataCount) a DataCount
	// section. Its presence is independent of whether any data segments
	// exist — a module with data segments may still omit it, and the
	// emitter must not fabricate one (I4/P7).
	DataCount *uint32

	// Customs holds every custom section keyed by the insertion point it
	// was found at (or should be emitted at): the SectionID it immediately
	// precedes, or SectionIDDataCount+1 for a trailing bucket after Data.
	Customs map[SectionID][]Custom
}

// NewModule returns an empty Module ready to be populated directly or
// through a Builder.
func NewModule() *Module {
	return &Module{Customs: map[SectionID][]Custom{}}
}

// AddType appends a function type and returns its index.
func (m *Module) AddType(t FunctionType) uint32 {
	m.FunctionTypes = append(m.FunctionTypes, t)
	return uint32(len(m.FunctionTypes) - 1)
}

// importedFunctionCount returns how many imports are function imports,
// since defined functions are indexed after every imported function.
func (m *Module) importedFunctionCount() int {
	n := 0
	for _, i := range m.Imports {
		if _, ok := i.Description.(ImportDescriptionFunction); ok {
			n++
		}
	}
	return n
}

func (m *Module) importedTableCount() int {
	n := 0
	for _, i := range m.Imports {
		if _, ok := i.Description.(ImportDescriptionTable); ok {
			n++
		}
	}
	return n
}

func (m *Module) importedMemoryCount() int {
	n := 0
	for _, i := range m.Imports {
		if _, ok := i.Description.(ImportDescriptionMemory); ok {
			n++
		}
	}
	return n
}

func (m *Module) importedGlobalCount() int {
	n := 0
	for _, i := range m.Imports {
		if _, ok := i.Description.(ImportDescriptionGlobal); ok {
			n++
		}
	}
	return n
}

// AddFunction appends a defined function and returns its index in the
// combined function index space (after every imported function).
func (m *Module) AddFunction(f Function) (uint32, error) {
	m.Functions = append(m.Functions, f)
	return toIndex(m.importedFunctionCount() + len(m.Functions) - 1)
}

// AddTable appends a defined table and returns its index in the combined
// table index space (after every imported table).
func (m *Module) AddTable(t Table) (uint32, error) {
	m.Tables = append(m.Tables, t)
	return toIndex(m.importedTableCount() + len(m.Tables) - 1)
}

// AddMemory appends a defined memory and returns its index in the combined
// memory index space (after every imported memory).
func (m *Module) AddMemory(mem Memory) (uint32, error) {
	m.Memories = append(m.Memories, mem)
	return toIndex(m.importedMemoryCount() + len(m.Memories) - 1)
}

// AddGlobal appends a defined global and returns its index in the combined
// global index space (after every imported global).
func (m *Module) AddGlobal(g Global) (uint32, error) {
	m.Globals = append(m.Globals, g)
	return toIndex(m.importedGlobalCount() + len(m.Globals) - 1)
}

// AddElement appends an element segment and returns its (plain, positional)
// index.
func (m *Module) AddElement(e Element) (uint32, error) {
	m.Elements = append(m.Elements, e)
	return toIndex(len(m.Elements) - 1)
}

// AddData appends a data segment and returns its (plain, positional) index.
func (m *Module) AddData(d Data) (uint32, error) {
	m.Data = append(m.Data, d)
	return toIndex(len(m.Data) - 1)
}

// AddImport appends an import and returns its index within the combined
// index space of its own kind (counting only imports, since it is added
// before any defined entry of that kind).
func (m *Module) AddImport(i Import) (uint32, error) {
	kind := i.Description.ExternType()
	count := 0
	for _, existing := range m.Imports {
		if existing.Description.ExternType() == kind {
			count++
		}
	}
	m.Imports = append(m.Imports, i)
	return toIndex(count)
}

// AddExport appends an export.
func (m *Module) AddExport(e Export) {
	m.Exports = append(m.Exports, e)
}

// AddCustom appends a custom section at the insertion point immediately
// before the given SectionID (or after Data if before is
// SectionIDDataCount+1).
func (m *Module) AddCustom(before SectionID, c Custom) {
	if m.Customs == nil {
		m.Customs = map[SectionID][]Custom{}
	}
	m.Customs[before] = append(m.Customs[before], c)
}

// IncludeDataCount snapshots the current data-segment count into the
// module's data-count field, so the emitter writes a DataCount section
// reporting len(m.Data) even if no data segment is ever added or removed
// afterward.
func (m *Module) IncludeDataCount() {
	n := uint32(len(m.Data))
	m.DataCount = &n
}

func toIndex(n int) (uint32, error) {
	if n < 0 || uint64(n) > uint64(^uint32(0)) {
		return 0, &IndexOverflowError{}
	}
	return uint32(n), nil
}
