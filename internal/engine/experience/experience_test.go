package experience

import "testing"

func TestEstimateYears(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"numeric years", "5 years Python developer, AWS, SQL", 5},
		{"plus suffix", "3+ years experience with Go", 3},
		{"yrs abbreviation", "over 7 yrs in data engineering", 7},
		{"singular year", "1 year internship", 1},
		{"first match wins", "2 years at Acme then 6 years at Globex", 2},
		{"fresher", "Fresher, no experience, knows HTML and CSS", 0},
		{"no experience phrase", "candidate with no experience yet", 0},
		{"senior fallback", "Senior backend engineer", 5},
		{"lead fallback", "Tech lead for platform team", 5},
		{"manager fallback", "Engineering manager", 5},
		{"default one year", "Knows Python and SQL", 1},
		{"empty text", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateYears(tc.text); got != tc.want {
				t.Fatalf("EstimateYears(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestEstimateYearsNumericBeatsKeywords(t *testing.T) {
	// The numeric pattern takes priority over the seniority fallback.
	if got := EstimateYears("Senior engineer with 2 years experience"); got != 2 {
		t.Fatalf("EstimateYears = %d, want 2", got)
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		years, required int
		want            float64
	}{
		{5, 3, 100}, // capped
		{3, 3, 100},
		{0, 3, 0},
		{1, 4, 25},
		{2, 4, 50},
		{10, 0, 100}, // zero requirement is fully satisfied
		{0, 0, 100},
	}
	for _, tc := range cases {
		if got := Percentage(tc.years, tc.required); got != tc.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tc.years, tc.required, got, tc.want)
		}
	}
}

func TestPercentageMonotonicInYears(t *testing.T) {
	prev := -1.0
	for years := 0; years <= 12; years++ {
		got := Percentage(years, 5)
		if got < prev {
			t.Fatalf("Percentage decreased at years=%d: %v < %v", years, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("Percentage out of bounds at years=%d: %v", years, got)
		}
		prev = got
	}
}

func TestClassifyLevel(t *testing.T) {
	cases := []struct {
		years int
		want  Level
	}{
		{-1, LevelFresher},
		{0, LevelFresher},
		{1, LevelEntry},
		{2, LevelEntry},
		{3, LevelMid},
		{5, LevelMid},
		{6, LevelSenior},
		{20, LevelSenior},
	}
	for _, tc := range cases {
		if got := ClassifyLevel(tc.years); got != tc.want {
			t.Errorf("ClassifyLevel(%d) = %q, want %q", tc.years, got, tc.want)
		}
	}
}
