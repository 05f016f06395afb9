// Package scoring combines skill-match and experience-match percentages
// into the final candidate score and orders candidates by it.
package scoring

import (
	"math"
	"sort"
)

// Weights of the final blend. These are design constants; changing them
// changes every persisted score, so they are deliberately not configurable.
const (
	skillWeight      = 0.6
	experienceWeight = 0.4
)

// Fit labels used by bulk and comparison flows.
const (
	FitStrong = "Strongly Fit"
	FitMid    = "Mid Fit"
	FitLow    = "Low Fit"
)

// FinalScore blends the two percentages 60/40 and rounds to one decimal
// place.
func FinalScore(skillPct, expPct float64) float64 {
	blended := skillPct*skillWeight + expPct*experienceWeight
	return math.Round(blended*10) / 10
}

// FitLabel buckets a final score into a coarse fit label.
func FitLabel(score float64) string {
	switch {
	case score >= 75:
		return FitStrong
	case score >= 50:
		return FitMid
	default:
		return FitLow
	}
}

// Scored is implemented by anything carrying a final score.
type Scored interface {
	Score() float64
}

// Rank sorts items by score descending. The sort is stable, so ties keep
// their original input order.
func Rank[T Scored](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score() > items[j].Score()
	})
}
