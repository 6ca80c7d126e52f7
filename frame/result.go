package frame

// ResultKind identifies the subtype of a RESULT response. The values are
// defined by the CQL native protocol.
type ResultKind int32

const (
	ResultKindVoid         ResultKind = 1
	ResultKindRows         ResultKind = 2
	ResultKindSetKeyspace  ResultKind = 3
	ResultKindPrepared     ResultKind = 4
	ResultKindSchemaChange ResultKind = 5
)

// String returns the protocol name of the result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultKindVoid:
		return "VOID"
	case ResultKindRows:
		return "ROWS"
	case ResultKindSetKeyspace:
		return "SET_KEYSPACE"
	case ResultKindPrepared:
		return "PREPARED"
	case ResultKindSchemaChange:
		return "SCHEMA_CHANGE"
	default:
		return "UNKNOWN_RESULT_KIND"
	}
}

// ResultBody is the closed union over RESULT response subtypes.
//
// Implemented by *Void, *Rows, *SetKeyspace, *Prepared and *SchemaChange.
type ResultBody interface {
	ResultKind() ResultKind
	isResultBody()
}

// ColumnSpec describes a single column of a row set, as decoded from the
// result metadata by the frame codec.
type ColumnSpec struct {
	Keyspace string
	Table    string
	Name     string

	// TypeID is the wire-level option id of the column type.
	TypeID int16
}

// RawRows is the raw row set of a ROWS result: column specs plus the
// still-serialized cell values. Deserialization into application types is
// the caller's concern, not this package's.
type RawRows struct {
	Columns []ColumnSpec

	// Rows holds one slice of serialized cells per row, in column order.
	// A nil cell is a database null.
	Rows [][][]byte
}

// RowCount returns the number of rows in the set.
func (r *RawRows) RowCount() int {
	return len(r.Rows)
}

// Void is the RESULT subtype for statements that return nothing.
type Void struct{}

func (*Void) ResultKind() ResultKind { return ResultKindVoid }
func (*Void) isResultBody()          {}

// Rows is the RESULT subtype carrying a row set and the paging state that
// accompanied it.
type Rows struct {
	Content RawRows
	Paging  PagingState
}

func (*Rows) ResultKind() ResultKind { return ResultKindRows }
func (*Rows) isResultBody()          {}

// SetKeyspace notifies that the active keyspace changed as a side effect of
// executing a USE statement.
type SetKeyspace struct {
	Keyspace string
}

func (*SetKeyspace) ResultKind() ResultKind { return ResultKindSetKeyspace }
func (*SetKeyspace) isResultBody()          {}

// Prepared is the RESULT subtype returned for a PREPARE request: the
// statement id to execute with, plus the bind-marker and result metadata.
type Prepared struct {
	ID            []byte
	BindColumns   []ColumnSpec
	ResultColumns []ColumnSpec
	PartitionKeys []int
}

func (*Prepared) ResultKind() ResultKind { return ResultKindPrepared }
func (*Prepared) isResultBody()          {}

// Schema-change targets and change types, as sent by the server.
const (
	SchemaChangeCreated = "CREATED"
	SchemaChangeUpdated = "UPDATED"
	SchemaChangeDropped = "DROPPED"

	SchemaTargetKeyspace  = "KEYSPACE"
	SchemaTargetTable     = "TABLE"
	SchemaTargetType      = "TYPE"
	SchemaTargetFunction  = "FUNCTION"
	SchemaTargetAggregate = "AGGREGATE"
)

// SchemaChange notifies that DDL executed by this request altered the
// schema.
type SchemaChange struct {
	// ChangeType is one of the SchemaChange* constants.
	ChangeType string

	// Target is one of the SchemaTarget* constants.
	Target string

	Keyspace string

	// Object names the affected table, type, function or aggregate;
	// empty when Target is KEYSPACE.
	Object string

	// Arguments holds the argument types of an affected function or
	// aggregate.
	Arguments []string
}

func (*SchemaChange) ResultKind() ResultKind { return ResultKindSchemaChange }
func (*SchemaChange) isResultBody()          {}
