package model

// Era is one band of the historical timeline used to group heritage places.
// Years are astronomical: negative values are BCE.
type Era struct {
	Name  string
	Start int // first year of the era
	End   int // last year of the era, inclusive
}

// Eras in chronological order. The boundaries follow the periodisation used
// across the site rather than any single scholarly convention.
var Eras = []Era{
	{Name: "Prehistoric", Start: -100000, End: -3301},
	{Name: "Indus Valley", Start: -3300, End: -1300},
	{Name: "Gandhara", Start: -1299, End: 710},
	{Name: "Sultanate", Start: 711, End: 1525},
	{Name: "Mughal", Start: 1526, End: 1747},
	{Name: "Sikh", Start: 1748, End: 1848},
	{Name: "Colonial", Start: 1849, End: 1946},
	{Name: "Modern", Start: 1947, End: 2999},
}

// EraOf returns the era containing the given year.
func EraOf(year int) (Era, bool) {
	for _, e := range Eras {
		if year >= e.Start && year <= e.End {
			return e, true
		}
	}
	return Era{}, false
}

// Span is the era's length in years.
func (e Era) Span() int {
	return e.End - e.Start + 1
}

func (e Era) Contains(year int) bool {
	return year >= e.Start && year <= e.End
}
