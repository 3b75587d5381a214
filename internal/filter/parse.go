package filter

import (
	"fmt"
	"strings"

	"github.com/relvacode/iso8601"

	"github.com/davidbarts/indeedsearch/internal/table"
)

// Expression is a compiled, immutable filter predicate plus the order matching rows are
// returned in.
type Expression struct {
	source  string
	root    Node
	sort    SortKey
	columns []table.Column
}

// Source returns the text the expression was parsed from.
func (e *Expression) Source() string { return e.source }

// Root returns the predicate tree.
func (e *Expression) Root() Node { return e.root }

// Sort returns the ordering applied to matching rows.
func (e *Expression) Sort() SortKey { return e.sort }

// MatchesAll reports whether the expression selects every row.
func (e *Expression) MatchesAll() bool {
	_, ok := e.root.(MatchAll)
	return ok
}

// Matches evaluates the predicate against one row.
func (e *Expression) Matches(row table.Row) bool {
	return Eval(e.root, row)
}

// Parse compiles expression against columns. An empty or blank expression selects every
// row. sortSpec is interpreted by ParseSort. Unknown columns and literals that do not fit
// their column's type are reported here, never during evaluation.
func Parse(columns []table.Column, expression, sortSpec string) (*Expression, error) {
	key, err := ParseSort(columns, sortSpec)
	if err != nil {
		return nil, err
	}

	expr := &Expression{
		source:  expression,
		root:    MatchAll{},
		sort:    key,
		columns: append([]table.Column(nil), columns...),
	}
	if strings.TrimSpace(expression) == "" {
		return expr, nil
	}

	tree, err := filterParser.ParseString("", expression)
	if err != nil {
		return nil, fromParseError(expression, err)
	}

	c := compiler{source: expression, columns: columns}
	root, err := c.or(tree)
	if err != nil {
		return nil, err
	}
	expr.root = root
	return expr, nil
}

// MustParse is like Parse but panics on error. It is intended for fixed expressions.
func MustParse(columns []table.Column, expression, sortSpec string) *Expression {
	expr, err := Parse(columns, expression, sortSpec)
	if err != nil {
		panic(err)
	}
	return expr
}

type compiler struct {
	source  string
	columns []table.Column
}

func (c compiler) or(e *orExpr) (Node, error) {
	left, err := c.and(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Right {
		right, rightErr := c.and(r)
		if rightErr != nil {
			return nil, rightErr
		}
		left = Or{Left: left, Right: right}
	}
	return left, nil
}

func (c compiler) and(e *andExpr) (Node, error) {
	left, err := c.not(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Right {
		right, rightErr := c.not(r)
		if rightErr != nil {
			return nil, rightErr
		}
		left = And{Left: left, Right: right}
	}
	return left, nil
}

func (c compiler) not(e *notExpr) (Node, error) {
	if e.Not != nil {
		operand, err := c.not(e.Not)
		if err != nil {
			return nil, err
		}
		return Not{Operand: operand}, nil
	}
	if e.Term.Group != nil {
		return c.or(e.Term.Group)
	}
	return c.predicate(e.Term.Pred)
}

func (c compiler) predicate(p *predicate) (Node, error) {
	name := strings.TrimSpace(strings.Trim(p.Column, "[]"))
	col, ok := table.Lookup(c.columns, name)
	if !ok {
		return nil, c.errorAt(p, fmt.Sprintf("unknown column %q", name))
	}
	column := c.columns[col]

	switch {
	case p.Compare != nil:
		op := operatorSymbols[p.Compare.Op]
		if column.Type == table.TypeBoolean && op != OpEqual && op != OpNotEqual {
			return nil, c.errorAt(p, fmt.Sprintf("operator %s is not defined for boolean column %q", op, column.Name))
		}
		v, err := c.literal(p, column, p.Compare.Value)
		if err != nil {
			return nil, err
		}
		return Comparison{Column: col, Op: op, Value: v}, nil

	case p.Like != nil:
		if column.Type != table.TypeText {
			return nil, c.errorAt(p, fmt.Sprintf("LIKE requires a text column, %q is %s", column.Name, column.Type))
		}
		pattern := table.FoldText(unquote(p.Like.Pattern))
		return Like{Column: col, Pattern: []rune(pattern), Negate: p.Like.Not}, nil

	case p.In != nil:
		values := make([]table.Value, 0, len(p.In.Values))
		for _, lit := range p.In.Values {
			v, err := c.literal(p, column, lit)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return In{Column: col, Values: values, Negate: p.In.Not}, nil

	default:
		return IsNull{Column: col, Negate: p.Null.Not}, nil
	}
}

// literal converts lit to a value of column's type.
func (c compiler) literal(p *predicate, column table.Column, lit *literal) (table.Value, error) {
	mismatch := func(kind string) error {
		return c.errorAt(p, fmt.Sprintf("column %q is %s and cannot be compared with %s", column.Name, column.Type, kind))
	}

	switch column.Type {
	case table.TypeText:
		if lit.Str == nil {
			return table.Value{}, mismatch(lit.kind())
		}
		return table.Text(unquote(*lit.Str)), nil
	case table.TypeInteger:
		if lit.Int == nil {
			return table.Value{}, mismatch(lit.kind())
		}
		return table.Integer(*lit.Int), nil
	case table.TypeDateTime:
		if lit.Str == nil {
			return table.Value{}, mismatch(lit.kind())
		}
		text := unquote(*lit.Str)
		when, err := iso8601.ParseString(text)
		if err != nil {
			return table.Value{}, c.errorAt(p, fmt.Sprintf("%q is not an ISO-8601 date: %v", text, err))
		}
		return table.DateTime(when), nil
	case table.TypeBoolean:
		if lit.Bool == nil {
			return table.Value{}, mismatch(lit.kind())
		}
		return table.Boolean(strings.EqualFold(*lit.Bool, "true")), nil
	default:
		return table.Value{}, mismatch(lit.kind())
	}
}

func (c compiler) errorAt(p *predicate, reason string) error {
	return newSyntaxError(c.source, p.Pos.Offset, p.EndPos.Offset, reason)
}

func (l *literal) kind() string {
	switch {
	case l.Str != nil:
		return "a text literal"
	case l.Int != nil:
		return "an integer literal"
	default:
		return "a boolean literal"
	}
}

// unquote strips the surrounding quotes of a string token and collapses doubled quotes.
func unquote(token string) string {
	if len(token) >= 2 && token[0] == '\'' && token[len(token)-1] == '\'' {
		token = token[1 : len(token)-1]
	}
	return strings.ReplaceAll(token, "''", "'")
}
