package filter

import (
	"sort"

	"github.com/samber/lo"

	"github.com/davidbarts/indeedsearch/internal/table"
)

// Apply seals t, keeps the rows expr matches and returns them stably sorted by the
// expression's sort key. Rows with equal keys keep their insertion order in both
// directions.
func Apply(t *table.Table, expr *Expression) ([]table.Row, error) {
	if !sameSchema(t.Columns(), expr.columns) {
		return nil, ErrSchemaMismatch
	}
	t.Seal()

	kept := lo.Filter(t.Rows(), func(row table.Row, _ int) bool {
		return Eval(expr.root, row)
	})

	key := expr.sort
	if !key.Enabled() {
		return kept, nil
	}

	sort.SliceStable(kept, func(i, j int) bool {
		cmp := table.Compare(kept[i].At(key.Column), kept[j].At(key.Column))
		if key.Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return kept, nil
}

func sameSchema(a, b []table.Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type || table.FoldText(a[i].Name) != table.FoldText(b[i].Name) {
			return false
		}
	}
	return true
}
