// Package experience infers years of professional experience and an
// experience-level label from resume text.
package experience

import (
	"regexp"
	"strconv"
	"strings"
)

// Level is a coarse experience band derived from years.
type Level string

const (
	LevelFresher Level = "Fresher"
	LevelEntry   Level = "Entry-level"
	LevelMid     Level = "Mid-level"
	LevelSenior  Level = "Senior"
)

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years|yrs|year)`)

// EstimateYears returns the estimated years of experience in the text.
// The first "<number> years" style match wins; without one, seniority
// keywords give 5, explicit fresher wording gives 0, and anything else
// gives 1 so an under-described resume is not scored as having none.
func EstimateYears(text string) int {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	if m := yearsPattern.FindStringSubmatch(lower); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			return years
		}
	}
	if strings.Contains(lower, "fresher") || strings.Contains(lower, "no experience") {
		return 0
	}
	if strings.Contains(lower, "senior") || strings.Contains(lower, "lead") || strings.Contains(lower, "manager") {
		return 5
	}
	return 1
}

// Percentage returns how well the detected years satisfy the role's
// requirement, capped at 100. A zero requirement is defined as fully
// satisfied rather than a division error.
func Percentage(years, requiredYears int) float64 {
	if requiredYears == 0 {
		return 100
	}
	pct := float64(years) / float64(requiredYears) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// ClassifyLevel maps years onto an experience band. Bands are inclusive on
// their lower bound: ≤0 Fresher, 1–2 Entry, 3–5 Mid, >5 Senior.
func ClassifyLevel(years int) Level {
	switch {
	case years <= 0:
		return LevelFresher
	case years <= 2:
		return LevelEntry
	case years <= 5:
		return LevelMid
	default:
		return LevelSenior
	}
}
