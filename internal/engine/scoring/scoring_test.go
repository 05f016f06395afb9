package scoring

import "testing"

func TestFinalScore(t *testing.T) {
	cases := []struct {
		skill, exp float64
		want       float64
	}{
		{100, 100, 100},
		{0, 0, 0},
		{100, 0, 60},
		{0, 100, 40},
		{50, 50, 50},
		{66.7, 33.3, 53.3}, // 40.02 + 13.32 = 53.34 -> 53.3
		{33.3, 66.7, 46.7}, // 19.98 + 26.68 = 46.66 -> 46.7
	}
	for _, tc := range cases {
		if got := FinalScore(tc.skill, tc.exp); got != tc.want {
			t.Errorf("FinalScore(%v, %v) = %v, want %v", tc.skill, tc.exp, got, tc.want)
		}
	}
}

func TestFinalScoreBounded(t *testing.T) {
	for skill := 0.0; skill <= 100; skill += 12.5 {
		for exp := 0.0; exp <= 100; exp += 12.5 {
			got := FinalScore(skill, exp)
			if got < 0 || got > 100 {
				t.Fatalf("FinalScore(%v, %v) = %v out of [0,100]", skill, exp, got)
			}
		}
	}
}

func TestFitLabel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, FitStrong},
		{75, FitStrong},
		{74.9, FitMid},
		{50, FitMid},
		{49.9, FitLow},
		{0, FitLow},
	}
	for _, tc := range cases {
		if got := FitLabel(tc.score); got != tc.want {
			t.Errorf("FitLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

type scoredItem struct {
	name  string
	score float64
}

func (s scoredItem) Score() float64 { return s.score }

func TestRankDescendingAndStable(t *testing.T) {
	items := []scoredItem{
		{"a", 50},
		{"b", 80},
		{"c", 50},
		{"d", 95},
	}
	Rank(items)

	wantOrder := []string{"d", "b", "a", "c"}
	for i, want := range wantOrder {
		if items[i].name != want {
			t.Fatalf("rank position %d = %q, want %q (got %v)", i, items[i].name, want, items)
		}
	}
}
