package wheel

// Chart colors. A category whose rating equals the snapshot maximum is
// drawn highlight-high; otherwise, equal to the minimum, highlight-low;
// otherwise its fixed base color.
const (
	HighlightHigh = "green"
	HighlightLow  = "red"
)

// baseColors assigns each category its fixed chart color.
var baseColors = map[Category]string{
	Physical:     "blue",
	Emotional:    "yellow",
	Professional: "purple",
	Creativity:   "teal",
	Financial:    "grey",
	Adventures:   "orange",
}

// BaseColor returns the fixed color for a category, or "" if unknown.
func BaseColor(c Category) string {
	return baseColors[c]
}

// Colors applies the highlight rule to ratings given in category order.
// The max branch is checked before the min branch, so every category
// tied at the maximum gets HighlightHigh; of the rest, every category
// tied at the minimum gets HighlightLow. When all ratings are equal the
// max branch wins for all six.
func Colors(ratings []int) []string {
	if len(ratings) == 0 {
		return nil
	}
	maxR, minR := ratings[0], ratings[0]
	for _, r := range ratings[1:] {
		if r > maxR {
			maxR = r
		}
		if r < minR {
			minR = r
		}
	}
	out := make([]string, len(ratings))
	for i, r := range ratings {
		switch {
		case r == maxR:
			out[i] = HighlightHigh
		case r == minR:
			out[i] = HighlightLow
		default:
			if i < len(categories) {
				out[i] = baseColors[categories[i]]
			}
		}
	}
	return out
}

// ChartData is the wire shape consumed by the pie chart.
type ChartData struct {
	Timestamp  string     `json:"timestamp,omitempty"`
	Categories []Category `json:"categories"`
	Ratings    []int      `json:"ratings"`
	Notes      []string   `json:"notes"`
	Colors     []string   `json:"colors"`
}

// NewChartData projects a snapshot into chart form.
func NewChartData(ts string, s Snapshot) ChartData {
	ratings := s.Ratings()
	return ChartData{
		Timestamp:  ts,
		Categories: Categories(),
		Ratings:    ratings,
		Notes:      s.Notes(),
		Colors:     Colors(ratings),
	}
}
