package filter

import "github.com/davidbarts/indeedsearch/internal/table"

// Eval evaluates n against row. Comparisons, LIKE and IN are false when the column is
// null; IS NULL is the only way to select absent values.
func Eval(n Node, row table.Row) bool {
	switch n := n.(type) {
	case MatchAll:
		return true
	case And:
		return Eval(n.Left, row) && Eval(n.Right, row)
	case Or:
		return Eval(n.Left, row) || Eval(n.Right, row)
	case Not:
		return !Eval(n.Operand, row)
	case Comparison:
		v := row.At(n.Column)
		if v.IsNull() {
			return false
		}
		return compareHolds(n.Op, table.Compare(v, n.Value))
	case Like:
		v := row.At(n.Column)
		if v.IsNull() {
			return false
		}
		return likeMatch(n.Pattern, []rune(table.FoldText(v.Str()))) != n.Negate
	case In:
		v := row.At(n.Column)
		if v.IsNull() {
			return false
		}
		found := false
		for _, candidate := range n.Values {
			if table.Compare(v, candidate) == 0 {
				found = true
				break
			}
		}
		return found != n.Negate
	case IsNull:
		return row.At(n.Column).IsNull() != n.Negate
	default:
		return false
	}
}

func compareHolds(op Operator, cmp int) bool {
	switch op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpLess:
		return cmp < 0
	case OpLessEqual:
		return cmp <= 0
	case OpGreater:
		return cmp > 0
	case OpGreaterEqual:
		return cmp >= 0
	default:
		return false
	}
}
