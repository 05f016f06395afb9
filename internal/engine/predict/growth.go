package predict

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var modernTech = []string{
	"ai", "machine learning", "deep learning", "kubernetes", "docker",
	"react", "vue", "next.js", "typescript", "graphql", "microservices",
	"cloud", "aws", "azure", "gcp", "terraform", "ci/cd", "devops",
	"python 3", "rust", "go", "blockchain", "web3",
}

var growthLearningKeywords = []string{
	"certification", "certified", "course", "training", "workshop",
	"bootcamp", "udemy", "coursera", "pluralsight", "learning",
	"studied", "mastered", "acquired", "upskilled",
}

var growthTopCompanies = []string{
	"google", "microsoft", "amazon", "meta", "facebook", "apple",
	"netflix", "tesla", "nvidia", "openai", "anthropic", "databricks",
}

var leadershipLevels = map[string][]string{
	"entry":        {"team member", "developer", "engineer", "analyst"},
	"intermediate": {"senior", "lead", "principal"},
	"advanced":     {"manager", "director", "head of", "vp", "cto", "ceo"},
}

var techStacks = map[string][]string{
	"backend":  {"python", "java", "node", "go", "ruby", ".net", "php"},
	"frontend": {"react", "angular", "vue", "svelte", "javascript", "typescript"},
	"mobile":   {"ios", "android", "react native", "flutter", "swift", "kotlin"},
	"data":     {"sql", "nosql", "mongodb", "postgresql", "bigquery", "spark"},
	"cloud":    {"aws", "azure", "gcp", "kubernetes", "docker"},
}

var (
	certPattern = regexp.MustCompile(`certifi(ed|cation)`)

	teamSizePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:member|person|people)?\s*team`),
		regexp.MustCompile(`team\s*of\s*(\d+)`),
		regexp.MustCompile(`led\s*(\d+)`),
		regexp.MustCompile(`managed\s*(\d+)`),
	}

	impactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)%\s*(?:improvement|increase|growth|faster)`),
		regexp.MustCompile(`(\d+)[kmb]?\+?\s*(?:users|customers|requests|transactions)`),
		regexp.MustCompile(`\$(\d+)[kmb]?\s*(?:revenue|savings|value)`),
		regexp.MustCompile(`(\d+)x\s*(?:faster|improvement|growth)`),
	}
)

type LearningDetails struct {
	ModernTechCount    int `json:"modern_tech_count"`
	LearningActivities int `json:"learning_activities"`
	Certifications     int `json:"certifications"`
}

type CareerDetails struct {
	JobTransitions  int     `json:"job_transitions"`
	Promotions      int     `json:"promotions"`
	TopCompany      bool    `json:"top_company"`
	YearsExperience float64 `json:"years_experience"`
}

type AdaptabilityDetails struct {
	SkillDiversity   int `json:"skill_diversity"`
	TechStackBreadth int `json:"tech_stack_breadth"`
	DomainExperience int `json:"domain_experience"`
}

type LeadershipEvolutionDetails struct {
	LeadershipLevel string `json:"leadership_level"`
	MaxTeamSize     int    `json:"max_team_size"`
	Mentorship      bool   `json:"mentorship"`
}

type ImpactDetails struct {
	QuantifiedAchievements int `json:"quantified_achievements"`
	InnovationIndicators   int `json:"innovation_indicators"`
	ScaleIndicators        int `json:"scale_indicators"`
}

// GrowthDimensionScores holds the five weighted growth dimensions.
type GrowthDimensionScores struct {
	LearningVelocity    float64 `json:"learning_velocity"`
	CareerTrajectory    float64 `json:"career_trajectory"`
	Adaptability        float64 `json:"adaptability"`
	LeadershipEvolution float64 `json:"leadership_evolution"`
	ImpactMagnitude     float64 `json:"impact_magnitude"`
}

type GrowthDetails struct {
	Learning     LearningDetails            `json:"learning"`
	Career       CareerDetails              `json:"career"`
	Adaptability AdaptabilityDetails        `json:"adaptability"`
	Leadership   LeadershipEvolutionDetails `json:"leadership"`
	Impact       ImpactDetails              `json:"impact"`
}

type GrowthRecommendations struct {
	OptimalRoles       []string `json:"optimal_roles"`
	RecommendedActions []string `json:"recommended_actions"`
	SuccessProbability string   `json:"success_probability"`
}

// GrowthPrediction is the full growth-potential report.
type GrowthPrediction struct {
	OverallScore     float64               `json:"overall_score"`
	Rating           string                `json:"rating"`
	DimensionScores  GrowthDimensionScores `json:"dimension_scores"`
	DimensionDetails GrowthDetails         `json:"dimension_details"`
	TimeToNextLevel  string                `json:"time_to_next_level"`
	GrowthBlockers   []string              `json:"growth_blockers"`
	Recommendations  GrowthRecommendations `json:"recommendations"`
}

// PredictGrowth estimates career growth potential from the resume text,
// estimated years of experience, and the extracted skill list.
func PredictGrowth(resumeText string, years float64, skills []string) GrowthPrediction {
	learningScore, learningDetails := analyzeLearningVelocity(resumeText)
	careerScore, careerDetails := analyzeCareerTrajectory(resumeText, years)
	adaptScore, adaptDetails := analyzeAdaptability(resumeText, skills)
	leadScore, leadDetails := analyzeLeadershipEvolution(resumeText)
	impactScore, impactDetails := analyzeImpactMagnitude(resumeText)

	dims := GrowthDimensionScores{
		LearningVelocity:    learningScore,
		CareerTrajectory:    careerScore,
		Adaptability:        adaptScore,
		LeadershipEvolution: leadScore,
		ImpactMagnitude:     impactScore,
	}
	overall := round1(learningScore*0.25 + careerScore*0.25 + adaptScore*0.20 +
		leadScore*0.15 + impactScore*0.15)

	return GrowthPrediction{
		OverallScore:    overall,
		Rating:          growthRating(overall),
		DimensionScores: dims,
		DimensionDetails: GrowthDetails{
			Learning:     learningDetails,
			Career:       careerDetails,
			Adaptability: adaptDetails,
			Leadership:   leadDetails,
			Impact:       impactDetails,
		},
		TimeToNextLevel: timeToNextLevel(overall),
		GrowthBlockers:  growthBlockers(dims),
		Recommendations: growthRecommendations(dims, overall),
	}
}

func growthRating(overall float64) string {
	switch {
	case overall >= 85:
		return "Exponential Growth"
	case overall >= 75:
		return "High Growth Potential"
	case overall >= 65:
		return "Moderate Growth"
	case overall >= 50:
		return "Steady Progress"
	default:
		return "Limited Growth Indicators"
	}
}

func analyzeLearningVelocity(text string) (float64, LearningDetails) {
	score := 40.0
	lower := strings.ToLower(text)
	var details LearningDetails

	for _, tech := range modernTech {
		if strings.Contains(lower, tech) {
			details.ModernTechCount++
		}
	}
	score += minF(float64(details.ModernTechCount)*5, 25)

	for _, kw := range growthLearningKeywords {
		if strings.Contains(lower, kw) {
			details.LearningActivities++
		}
	}
	score += minF(float64(details.LearningActivities)*4, 20)

	details.Certifications = len(certPattern.FindAllString(lower, -1))
	score += minF(float64(details.Certifications)*5, 15)

	return minF(score, 100), details
}

func analyzeCareerTrajectory(text string, years float64) (float64, CareerDetails) {
	score := 30.0
	lower := strings.ToLower(text)
	details := CareerDetails{YearsExperience: years}

	jobCount := 0
	for _, kw := range []string{"company", "worked at", "position", "role"} {
		jobCount += strings.Count(lower, kw)
	}
	if jobCount > 6 {
		jobCount = 6
	}
	details.JobTransitions = jobCount
	score += float64(jobCount) * 5

	for _, kw := range []string{"promoted", "advanced", "progressed", "elevated"} {
		if strings.Contains(lower, kw) {
			details.Promotions++
		}
	}
	score += minF(float64(details.Promotions)*10, 20)

	details.TopCompany = containsAnyWord(lower, growthTopCompanies)
	if details.TopCompany {
		score += 15
	}

	if years > 0 {
		yearlyGrowth := float64(details.JobTransitions+details.Promotions) / years
		score += minF(yearlyGrowth*10, 25)
	}

	return minF(score, 100), details
}

func analyzeAdaptability(text string, skills []string) (float64, AdaptabilityDetails) {
	score := 35.0
	lower := strings.ToLower(text)
	var details AdaptabilityDetails

	uniq := map[string]bool{}
	for _, s := range skills {
		uniq[s] = true
	}
	details.SkillDiversity = len(uniq)
	score += minF(float64(details.SkillDiversity)*3, 30)

	for _, techs := range techStacks {
		if containsAnyWord(lower, techs) {
			details.TechStackBreadth++
		}
	}
	score += float64(details.TechStackBreadth) * 7

	for _, domain := range []string{"fintech", "healthcare", "ecommerce", "saas", "gaming", "finance", "retail"} {
		if strings.Contains(lower, domain) {
			details.DomainExperience++
		}
	}
	score += minF(float64(details.DomainExperience)*5, 15)

	return minF(score, 100), details
}

func analyzeLeadershipEvolution(text string) (float64, LeadershipEvolutionDetails) {
	score := 25.0
	lower := strings.ToLower(text)
	details := LeadershipEvolutionDetails{LeadershipLevel: "Not Indicated"}

	switch {
	case containsAnyWord(lower, leadershipLevels["advanced"]):
		score += 40
		details.LeadershipLevel = "Advanced"
	case containsAnyWord(lower, leadershipLevels["intermediate"]):
		score += 25
		details.LeadershipLevel = "Intermediate"
	case containsAnyWord(lower, leadershipLevels["entry"]):
		score += 10
		details.LeadershipLevel = "Entry"
	}

	for _, pattern := range teamSizePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			if size, err := strconv.Atoi(m[1]); err == nil && size > details.MaxTeamSize {
				details.MaxTeamSize = size
			}
		}
	}
	if details.MaxTeamSize > 0 {
		score += minF(float64(details.MaxTeamSize)*2, 25)
	}

	for _, kw := range []string{"mentor", "coach", "train", "guide", "develop team"} {
		if strings.Contains(lower, kw) {
			details.Mentorship = true
			break
		}
	}
	if details.Mentorship {
		score += 10
	}

	return minF(score, 100), details
}

func analyzeImpactMagnitude(text string) (float64, ImpactDetails) {
	score := 30.0
	lower := strings.ToLower(text)
	var details ImpactDetails

	for _, pattern := range impactPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil && n >= 100 {
				details.QuantifiedAchievements++
			}
		}
	}
	score += minF(float64(details.QuantifiedAchievements)*12, 40)

	for _, kw := range []string{
		"built from scratch", "architected", "designed",
		"innovative", "pioneered", "launched", "shipped",
		"patent", "publication", "open source",
	} {
		if strings.Contains(lower, kw) {
			details.InnovationIndicators++
		}
	}
	score += minF(float64(details.InnovationIndicators)*5, 20)

	for _, kw := range []string{"scale", "scalable", "distributed", "millions", "global", "enterprise"} {
		if strings.Contains(lower, kw) {
			details.ScaleIndicators++
		}
	}
	score += minF(float64(details.ScaleIndicators)*3, 10)

	return minF(score, 100), details
}

func timeToNextLevel(overall float64) string {
	switch {
	case overall >= 85:
		return "3-6 months"
	case overall >= 75:
		return "6-12 months"
	case overall >= 65:
		return "12-18 months"
	case overall >= 50:
		return "18-24 months"
	default:
		return "24+ months"
	}
}

func growthBlockers(dims GrowthDimensionScores) []string {
	var blockers []string
	if dims.LearningVelocity < 60 {
		blockers = append(blockers, "Limited recent learning activity - consider pursuing certifications")
	}
	if dims.CareerTrajectory < 60 {
		blockers = append(blockers, "Slow career progression - may need role change or increased visibility")
	}
	if dims.Adaptability < 60 {
		blockers = append(blockers, "Narrow skill set - expanding technical breadth recommended")
	}
	if dims.LeadershipEvolution < 50 {
		blockers = append(blockers, "Limited leadership experience - seek mentorship or team lead opportunities")
	}
	if dims.ImpactMagnitude < 55 {
		blockers = append(blockers, "Few quantified achievements - focus on measuring and documenting impact")
	}
	if len(blockers) == 0 {
		return []string{"No significant blockers identified"}
	}
	return blockers
}

func growthRecommendations(dims GrowthDimensionScores, overall float64) GrowthRecommendations {
	var rec GrowthRecommendations

	switch {
	case dims.LeadershipEvolution >= 75 && dims.ImpactMagnitude >= 70:
		rec.OptimalRoles = []string{"Engineering Manager", "Director of Engineering", "VP Engineering"}
	case dims.LearningVelocity >= 80 && dims.Adaptability >= 75:
		rec.OptimalRoles = []string{"Principal Engineer", "Staff Engineer", "Tech Lead"}
	case dims.ImpactMagnitude >= 75:
		rec.OptimalRoles = []string{"Senior Engineer", "Lead Engineer", "Architect"}
	default:
		rec.OptimalRoles = []string{"Mid-level Engineer", "Senior Engineer", "Specialist"}
	}

	var actions []string
	if dims.LearningVelocity < 75 {
		actions = append(actions, "Pursue advanced certifications in modern technologies")
	}
	if dims.LeadershipEvolution < 70 {
		actions = append(actions, "Take on team lead or mentorship responsibilities")
	}
	if dims.ImpactMagnitude < 70 {
		actions = append(actions, "Focus on high-impact projects with measurable outcomes")
	}
	if dims.Adaptability < 70 {
		actions = append(actions, "Learn complementary skills outside current tech stack")
	}
	if len(actions) == 0 {
		actions = []string{
			"Maintain current growth trajectory",
			"Seek leadership opportunities at next level",
			"Build thought leadership through writing/speaking",
		}
	}
	if len(actions) > 3 {
		actions = actions[:3]
	}
	rec.RecommendedActions = actions

	switch {
	case overall >= 80:
		rec.SuccessProbability = "Very High (85-95%)"
	case overall >= 70:
		rec.SuccessProbability = "High (75-85%)"
	case overall >= 60:
		rec.SuccessProbability = "Moderate (60-75%)"
	default:
		rec.SuccessProbability = "Developing (40-60%)"
	}

	return rec
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
