package filter

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// filterLexer tokenizes filter expressions. Keywords are matched before identifiers and
// require a word boundary, so columns such as "Notes" or "Order" stay identifiers.
//
//nolint:gochecknoglobals // Lexer definitions are immutable and shared.
var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(AND|OR|NOT|LIKE|IS|NULL|IN|TRUE|FALSE)\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*|\[[^\]]+\]`},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Number", Pattern: `[-+]?\d+`},
	{Name: "Operator", Pattern: `<>|!=|<=|>=|=|<|>`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "whitespace", Pattern: `\s+`},
})

//nolint:gochecknoglobals // The parser is stateless once built.
var filterParser = participle.MustBuild[orExpr](
	participle.Lexer(filterLexer),
	participle.Elide("whitespace"),
	participle.CaseInsensitive("Keyword"),
	participle.UseLookahead(4),
)

type orExpr struct {
	Left  *andExpr   `@@`
	Right []*andExpr `( "OR" @@ )*`
}

type andExpr struct {
	Left  *notExpr   `@@`
	Right []*notExpr `( "AND" @@ )*`
}

type notExpr struct {
	Not  *notExpr `  "NOT" @@`
	Term *term    `| @@`
}

type term struct {
	Group *orExpr    `  "(" @@ ")"`
	Pred  *predicate `| @@`
}

type predicate struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Column  string      `@Ident`
	Compare *comparison `( @@`
	Like    *likeClause `| @@`
	In      *inClause   `| @@`
	Null    *nullClause `| @@ )`
}

type comparison struct {
	Op    string   `@Operator`
	Value *literal `@@`
}

type likeClause struct {
	Not     bool   `@"NOT"? "LIKE"`
	Pattern string `@String`
}

type inClause struct {
	Not    bool       `@"NOT"? "IN"`
	Values []*literal `"(" @@ ( "," @@ )* ")"`
}

type nullClause struct {
	Not bool `"IS" @"NOT"? "NULL"`
}

type literal struct {
	Pos lexer.Position

	Str  *string `  @String`
	Int  *int64  `| @Number`
	Bool *string `| @("TRUE" | "FALSE")`
}
