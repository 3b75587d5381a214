package filter

import "github.com/davidbarts/indeedsearch/internal/table"

// Node is a compiled filter expression node. The set of node types is closed.
type Node interface {
	node()
}

// Operator is a comparison operator.
type Operator int

// Comparison operators.
const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

var operatorSymbols = map[string]Operator{ //nolint:gochecknoglobals // Lookup table.
	"=":  OpEqual,
	"<>": OpNotEqual,
	"!=": OpNotEqual,
	"<":  OpLess,
	"<=": OpLessEqual,
	">":  OpGreater,
	">=": OpGreaterEqual,
}

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "<>"
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// MatchAll matches every row. It is what an empty expression compiles to.
type MatchAll struct{}

// And is true when both operands are true.
type And struct{ Left, Right Node }

// Or is true when either operand is true.
type Or struct{ Left, Right Node }

// Not negates its operand.
type Not struct{ Operand Node }

// Comparison compares a column against a literal of the column's type.
type Comparison struct {
	Column int
	Op     Operator
	Value  table.Value
}

// Like matches a text column against a wildcard pattern, ignoring case.
type Like struct {
	Column  int
	Pattern []rune // case-folded
	Negate  bool
}

// In tests a column for membership in a literal list.
type In struct {
	Column int
	Values []table.Value
	Negate bool
}

// IsNull tests a column for the absent value.
type IsNull struct {
	Column int
	Negate bool
}

func (MatchAll) node()   {}
func (And) node()        {}
func (Or) node()         {}
func (Not) node()        {}
func (Comparison) node() {}
func (Like) node()       {}
func (In) node()         {}
func (IsNull) node()     {}
