package screening

// Recommendation labels, strongest first.
const (
	RecommendStrong       = "Strong Match - Interview Recommended"
	RecommendGood         = "Good Match - Consider for Interview"
	RecommendModerate     = "Moderate Match - Interview Optional"
	RecommendNotAdvised   = "Moderate Match - Not Recommended"
	RecommendNotQualified = "Weak Match - Not Qualified"
	RecommendNotScreened  = "Not Screened"
)

// Recommend buckets a screening into a hiring recommendation. The final
// score picks the tier; the sub-scores split the upper tiers.
func Recommend(finalScore, skillMatch, expMatch float64) string {
	switch {
	case finalScore >= 80:
		if skillMatch >= 70 && expMatch >= 70 {
			return RecommendStrong
		}
		return RecommendGood
	case finalScore >= 60:
		if skillMatch >= 70 || expMatch >= 80 {
			return RecommendGood
		}
		return RecommendModerate
	case finalScore >= 40:
		return RecommendNotAdvised
	default:
		return RecommendNotQualified
	}
}
