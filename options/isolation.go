package options

// IsolationLevel is the transaction isolation level requested for writes.
type IsolationLevel int

const (
	IsolationNone IsolationLevel = iota
	IsolationReadUncommitted
	IsolationReadCommitted
	IsolationRepeatableRead
	IsolationSerializable
)

// Literals are matched case-sensitively, as the Spark JDBC option contract
// requires.
var isolationLevels = map[string]IsolationLevel{
	"NONE":             IsolationNone,
	"READ_UNCOMMITTED": IsolationReadUncommitted,
	"READ_COMMITTED":   IsolationReadCommitted,
	"REPEATABLE_READ":  IsolationRepeatableRead,
	"SERIALIZABLE":     IsolationSerializable,
}

// ParseIsolationLevel maps one of the five fixed literals to its level.
func ParseIsolationLevel(s string) (IsolationLevel, error) {
	level, ok := isolationLevels[s]
	if !ok {
		return IsolationReadUncommitted, &IsolationLevelError{Value: s}
	}
	return level, nil
}

func (l IsolationLevel) String() string {
	switch l {
	case IsolationNone:
		return "NONE"
	case IsolationReadUncommitted:
		return "READ_UNCOMMITTED"
	case IsolationReadCommitted:
		return "READ_COMMITTED"
	case IsolationRepeatableRead:
		return "REPEATABLE_READ"
	case IsolationSerializable:
		return "SERIALIZABLE"
	}
	return "UNKNOWN"
}
