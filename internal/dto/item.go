package dto

import "time"

type ItemInput struct {
	Concept     string  `json:"concept"`
	Summary     string  `json:"summary,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // YYYY-MM-DD
}

// ItemFilter narrows the catalog listing. A nil field means no filter.
type ItemFilter struct {
	Category *string
	Year     *int
}

// DateRange returns the inclusive calendar-year bounds for the Year filter,
// or ok=false when no year filter is set.
func (f ItemFilter) DateRange() (from, to time.Time, ok bool) {
	if f.Year == nil {
		return time.Time{}, time.Time{}, false
	}
	y := *f.Year
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
		true
}
