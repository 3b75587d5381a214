package indeed

import "github.com/davidbarts/indeedsearch/internal/table"

// Column names of the result schema.
const (
	ColumnTitle     = "Title"
	ColumnCompany   = "Company"
	ColumnLocation  = "Location"
	ColumnSource    = "Source"
	ColumnDate      = "Date"
	ColumnSnippet   = "Snippet"
	ColumnURL       = "URL"
	ColumnJobKey    = "JobKey"
	ColumnSponsored = "Sponsored"
	ColumnExpired   = "Expired"
)

// Schema returns the columns of a search result table, in display order.
func Schema() []table.Column {
	return []table.Column{
		{Name: ColumnTitle, Type: table.TypeText},
		{Name: ColumnCompany, Type: table.TypeText},
		{Name: ColumnLocation, Type: table.TypeText},
		{Name: ColumnSource, Type: table.TypeText},
		{Name: ColumnDate, Type: table.TypeDateTime},
		{Name: ColumnSnippet, Type: table.TypeText},
		{Name: ColumnURL, Type: table.TypeText},
		{Name: ColumnJobKey, Type: table.TypeText},
		{Name: ColumnSponsored, Type: table.TypeBoolean},
		{Name: ColumnExpired, Type: table.TypeBoolean},
	}
}
