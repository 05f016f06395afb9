// Package predict scores how a candidate is likely to perform and grow,
// using keyword heuristics over the resume text. Both predictors rate five
// dimensions, blend them with fixed weights, and attach the raw counts
// behind every number so callers can show their work.
package predict

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var futureTechSkills = map[string]bool{
	"ai": true, "machine learning": true, "deep learning": true,
	"nlp": true, "computer vision": true, "python": true,
	"tensorflow": true, "pytorch": true, "kubernetes": true,
	"docker": true, "aws": true, "azure": true, "gcp": true,
	"react": true, "node": true, "typescript": true, "go": true,
	"rust": true, "scala": true, "data science": true, "big data": true,
	"spark": true, "hadoop": true, "devops": true, "ci/cd": true,
	"microservices": true, "blockchain": true,
}

var leadershipKeywords = []struct {
	word   string
	points int
}{
	{"team lead", 25}, {"manager", 25}, {"director", 30}, {"vp", 35},
	{"cto", 40}, {"ceo", 40}, {"head of", 30}, {"principal", 25},
	{"staff engineer", 20}, {"mentored", 15}, {"coached", 15},
	{"trained", 12}, {"led", 18}, {"managed team", 20}, {"supervised", 15},
	{"hired", 18}, {"recruited", 15}, {"budget", 15}, {"p&l", 20},
	{"strategic", 18}, {"roadmap", 15}, {"stakeholder", 12},
	{"cross-functional", 15}, {"executive", 20},
}

var achievementKeywords = []string{
	"increased", "decreased", "improved", "optimized", "reduced",
	"achieved", "delivered", "launched", "built", "designed",
	"scaled", "grew", "saved", "generated", "revenue", "profit",
}

var perfLearningIndicators = []struct {
	word   string
	points int
}{
	{"certification", 15}, {"certified", 15}, {"course", 10},
	{"training", 10}, {"bootcamp", 15}, {"workshop", 8},
	{"conference", 10}, {"self-taught", 18}, {"learned", 8},
	{"studied", 8}, {"upskilled", 12}, {"continuous learning", 20},
}

var (
	teamOfPattern  = regexp.MustCompile(`team of (\d+)`)
	jobNounPattern = regexp.MustCompile(`\b(company|organization|firm|employer)\b`)
)

// TechnicalDetails records the raw inputs behind the technical dimension.
type TechnicalDetails struct {
	SkillCount      int      `json:"skill_count"`
	FutureTechCount int      `json:"future_tech_count"`
	Certifications  int      `json:"certifications"`
	DepthIndicators []string `json:"depth_indicators"`
}

type ExperienceDetails struct {
	Years        float64 `json:"years"`
	SeniorRole   bool    `json:"senior_role"`
	TopCompany   bool    `json:"top_company"`
	Achievements int     `json:"achievements"`
}

type CultureDetails struct {
	CollaborationScore int    `json:"collaboration_score"`
	CommunicationScore int    `json:"communication_score"`
	TeamSize           string `json:"team_size"`
}

type TrajectoryDetails struct {
	Promotions         int    `json:"promotions"`
	LearningIndicators int    `json:"learning_indicators"`
	Trajectory         string `json:"trajectory"`
}

type LeadershipDetails struct {
	Indicators        []string `json:"leadership_indicators"`
	StrategicThinking bool     `json:"strategic_thinking"`
	PeopleManagement  bool     `json:"people_management"`
}

// DimensionScores holds the five weighted performance dimensions.
type DimensionScores struct {
	TechnicalExcellence    float64 `json:"technical_excellence"`
	ProfessionalExperience float64 `json:"professional_experience"`
	CulturalFit            float64 `json:"cultural_fit"`
	GrowthTrajectory       float64 `json:"growth_trajectory"`
	LeadershipPotential    float64 `json:"leadership_potential"`
}

type RiskAssessment struct {
	RiskScore   float64  `json:"risk_score"`
	RiskFactors []string `json:"risk_factors"`
}

type PerformanceRecommendations struct {
	RoleFit          []string `json:"role_fit"`
	TeamSize         string   `json:"team_size"`
	OnboardingFocus  []string `json:"onboarding_focus"`
	Strengths        []string `json:"strengths"`
	DevelopmentAreas []string `json:"development_areas"`
}

type PerformanceDetails struct {
	Technical  TechnicalDetails  `json:"technical"`
	Experience ExperienceDetails `json:"experience"`
	Culture    CultureDetails    `json:"cultural_fit"`
	Growth     TrajectoryDetails `json:"growth"`
	Leadership LeadershipDetails `json:"leadership"`
}

// PerformancePrediction is the full multi-dimensional report.
type PerformancePrediction struct {
	OverallScore     float64                    `json:"overall_score"`
	Rating           string                     `json:"rating"`
	Confidence       string                     `json:"confidence"`
	ConfidenceScore  int                        `json:"confidence_score"`
	DimensionScores  DimensionScores            `json:"dimension_scores"`
	DimensionDetails PerformanceDetails         `json:"dimension_details"`
	RiskAssessment   RiskAssessment             `json:"risk_assessment"`
	Recommendations  PerformanceRecommendations `json:"recommendations"`
}

// PerformancePredictor runs the heuristic assessment. Now feeds the
// recent-activity risk check; leave nil for the wall clock.
type PerformancePredictor struct {
	Now func() time.Time
}

func (p *PerformancePredictor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Predict assesses the resume text together with the already-extracted
// skill list and estimated years of experience.
func (p *PerformancePredictor) Predict(resumeText string, years float64, skills []string) PerformancePrediction {
	techScore, techDetails := assessTechnical(resumeText, skills)
	expScore, expDetails := assessExperience(resumeText, years)
	cultureScore, cultureDetails := assessCulturalFit(resumeText)
	growthScore, growthDetails := assessTrajectory(resumeText)
	leadScore, leadDetails := assessLeadership(resumeText)
	riskScore, riskFactors := p.assessRisk(resumeText, years)

	overall := techScore*0.25 + expScore*0.20 + cultureScore*0.15 +
		growthScore*0.20 + leadScore*0.20

	confidenceScore := len(resumeText) / 10
	if confidenceScore > 100 {
		confidenceScore = 100
	}
	confidence := "Low"
	switch {
	case confidenceScore >= 80:
		confidence = "High"
	case confidenceScore >= 60:
		confidence = "Medium"
	}

	return PerformancePrediction{
		OverallScore:    round1(overall),
		Rating:          performanceRating(overall),
		Confidence:      confidence,
		ConfidenceScore: confidenceScore,
		DimensionScores: DimensionScores{
			TechnicalExcellence:    round1(techScore),
			ProfessionalExperience: round1(expScore),
			CulturalFit:            round1(cultureScore),
			GrowthTrajectory:       round1(growthScore),
			LeadershipPotential:    round1(leadScore),
		},
		DimensionDetails: PerformanceDetails{
			Technical:  techDetails,
			Experience: expDetails,
			Culture:    cultureDetails,
			Growth:     growthDetails,
			Leadership: leadDetails,
		},
		RiskAssessment: RiskAssessment{
			RiskScore:   round1(riskScore),
			RiskFactors: riskFactors,
		},
		Recommendations: performanceRecommendations(techScore, expScore, cultureScore, growthScore, leadScore),
	}
}

func performanceRating(overall float64) string {
	switch {
	case overall >= 85:
		return "Exceptional"
	case overall >= 75:
		return "Excellent"
	case overall >= 65:
		return "Good"
	case overall >= 50:
		return "Fair"
	default:
		return "Below Average"
	}
}

func assessTechnical(text string, skills []string) (float64, TechnicalDetails) {
	score := 30.0
	lower := strings.ToLower(text)
	details := TechnicalDetails{
		SkillCount:      len(skills),
		DepthIndicators: []string{},
	}

	if len(skills) > 0 {
		score += minF(float64(len(skills))*6, 35)
	}

	futureCount := 0
	for _, s := range skills {
		if futureTechSkills[strings.ToLower(s)] {
			futureCount++
		}
	}
	details.FutureTechCount = futureCount
	if futureCount > 0 {
		score += minF(float64(futureCount)*8, 20)
	}

	certs := strings.Count(lower, "certified") + strings.Count(lower, "certification") + strings.Count(lower, "certificate")
	details.Certifications = certs
	score += minF(float64(certs)*5, 10)

	for _, kw := range []string{"expert", "advanced", "proficient", "specialized", "experienced"} {
		if strings.Contains(lower, kw) {
			details.DepthIndicators = append(details.DepthIndicators, kw)
			score++
		}
	}

	return minF(score, 100), details
}

func assessExperience(text string, years float64) (float64, ExperienceDetails) {
	score := 25.0
	lower := strings.ToLower(text)
	details := ExperienceDetails{Years: years}

	if years > 0 {
		score += minF(years*8, 40)
	} else if containsAnyWord(lower, []string{"worked", "work", "experience", "job", "position", "role", "employed", "company"}) {
		score += 15
	}

	if containsAnyWord(lower, []string{"senior", "lead", "principal", "architect", "director", "manager", "head", "chief"}) {
		details.SeniorRole = true
		score += 15
	}

	if containsAnyWord(lower, []string{
		"google", "microsoft", "amazon", "apple", "meta", "netflix",
		"uber", "airbnb", "tesla", "spacex", "stripe", "adobe", "ibm", "oracle",
	}) {
		details.TopCompany = true
		score += 10
	}

	achievements := 0
	for _, kw := range achievementKeywords {
		if strings.Contains(lower, kw) {
			achievements++
		}
	}
	details.Achievements = achievements
	if achievements > 0 {
		score += minF(float64(achievements)*3, 10)
	}

	return minF(score, 100), details
}

func assessCulturalFit(text string) (float64, CultureDetails) {
	score := 50.0
	lower := strings.ToLower(text)
	details := CultureDetails{TeamSize: "unknown"}

	collab := 0
	for _, kw := range []string{"team", "collaborated", "cooperation", "partnership", "cross-functional"} {
		if strings.Contains(lower, kw) {
			collab++
		}
	}
	details.CollaborationScore = int(minF(float64(collab)*6, 30))
	score += float64(details.CollaborationScore)

	comm := 0
	for _, kw := range []string{"presented", "communication", "documented", "stakeholder", "client"} {
		if strings.Contains(lower, kw) {
			comm++
		}
	}
	details.CommunicationScore = int(minF(float64(comm)*4, 20))
	score += float64(details.CommunicationScore)

	if m := teamOfPattern.FindStringSubmatch(lower); m != nil {
		size, err := strconv.Atoi(m[1])
		if err == nil {
			details.TeamSize = fmt.Sprintf("%d members", size)
			if size >= 5 {
				score += 10
			}
		}
	}

	return minF(score, 100), details
}

func assessTrajectory(text string) (float64, TrajectoryDetails) {
	score := 40.0
	lower := strings.ToLower(text)
	details := TrajectoryDetails{Trajectory: "Steady"}

	promotions := 0
	for _, kw := range []string{"promoted", "promotion", "advanced", "elevated", "progression"} {
		if strings.Contains(lower, kw) {
			promotions++
		}
	}
	details.Promotions = promotions
	switch {
	case promotions >= 2:
		score += 35
		details.Trajectory = "Rapid Growth"
	case promotions == 1:
		score += 20
		details.Trajectory = "Growing"
	}

	learningScore := 0.0
	for _, li := range perfLearningIndicators {
		if strings.Contains(lower, li.word) {
			learningScore += float64(li.points)
			details.LearningIndicators++
		}
	}
	score += minF(learningScore, 25)

	return minF(score, 100), details
}

func assessLeadership(text string) (float64, LeadershipDetails) {
	score := 20.0
	lower := strings.ToLower(text)
	details := LeadershipDetails{Indicators: []string{}}

	for _, lk := range leadershipKeywords {
		if strings.Contains(lower, lk.word) {
			score += minF(float64(lk.points), 15)
			if len(details.Indicators) < 5 {
				details.Indicators = append(details.Indicators, lk.word)
			}
		}
	}

	if containsAnyWord(lower, []string{"strategy", "strategic", "vision", "roadmap", "planning", "plan"}) {
		details.StrategicThinking = true
		score += 10
	}

	if containsAnyWord(lower, []string{"managed team", "supervised", "mentored", "coached", "hired", "team", "manage"}) {
		details.PeopleManagement = true
		score += 10
	}

	return minF(score, 100), details
}

func (p *PerformancePredictor) assessRisk(text string, years float64) (float64, []string) {
	risk := 100.0
	risks := []string{}
	lower := strings.ToLower(text)

	jobCount := len(jobNounPattern.FindAllString(lower, -1))
	if jobCount > 0 && years > 0 {
		avgTenure := years / float64(jobCount)
		if avgTenure < 1 {
			risk -= 30
			risks = append(risks, "High job turnover rate (< 1 year average)")
		} else if avgTenure < 1.5 {
			risk -= 15
			risks = append(risks, "Moderate job changes")
		}
	}

	if len(text) < 500 {
		risk -= 20
		risks = append(risks, "Limited resume content")
	}

	year := p.now().Year()
	if !strings.Contains(text, strconv.Itoa(year)) && !strings.Contains(text, strconv.Itoa(year-1)) {
		risk -= 10
		risks = append(risks, "No recent work mentioned")
	}

	if risk < 0 {
		risk = 0
	}
	return risk, risks
}

func performanceRecommendations(tech, exp, culture, growth, lead float64) PerformanceRecommendations {
	rec := PerformanceRecommendations{
		OnboardingFocus:  []string{},
		Strengths:        []string{},
		DevelopmentAreas: []string{},
	}

	switch {
	case tech >= 80 && lead >= 75:
		rec.RoleFit = []string{"Technical Lead", "Engineering Manager", "Principal Engineer"}
	case tech >= 75:
		rec.RoleFit = []string{"Senior Engineer", "Tech Lead", "Specialist"}
	case tech >= 60:
		rec.RoleFit = []string{"Mid-level Engineer", "Individual Contributor"}
	default:
		rec.RoleFit = []string{"Junior Engineer", "Associate"}
	}

	switch {
	case lead >= 75:
		rec.TeamSize = "5-15 members"
	case lead >= 60:
		rec.TeamSize = "3-7 members"
	default:
		rec.TeamSize = "Individual contributor or small team (2-3)"
	}

	if culture < 70 {
		rec.OnboardingFocus = append(rec.OnboardingFocus, "Team integration and collaboration")
	}
	if lead < 60 {
		rec.OnboardingFocus = append(rec.OnboardingFocus, "Leadership development")
	}
	if tech < 70 {
		rec.OnboardingFocus = append(rec.OnboardingFocus, "Technical skill enhancement")
	}

	if tech >= 75 {
		rec.Strengths = append(rec.Strengths, "Strong technical capabilities")
	}
	if growth >= 75 {
		rec.Strengths = append(rec.Strengths, "Excellent learning agility")
	}
	if lead >= 75 {
		rec.Strengths = append(rec.Strengths, "Leadership-ready")
	}
	if culture >= 75 {
		rec.Strengths = append(rec.Strengths, "Great team player")
	}

	dims := []struct {
		name  string
		score float64
	}{
		{"Technical", tech},
		{"Experience", exp},
		{"Cultural Fit", culture},
		{"Growth", growth},
		{"Leadership", lead},
	}
	for _, d := range dims {
		if d.score < 60 {
			rec.DevelopmentAreas = append(rec.DevelopmentAreas, d.name)
		}
	}

	return rec
}

func containsAnyWord(haystack string, words []string) bool {
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
