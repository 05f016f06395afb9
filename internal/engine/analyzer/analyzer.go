// Package analyzer produces a human-readable assessment of a resume
// against a job description from the lower-level engine primitives.
package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/halee5027/RecruitNova/internal/engine/experience"
	"github.com/halee5027/RecruitNova/internal/engine/scoring"
	"github.com/halee5027/RecruitNova/internal/engine/skills"
	"github.com/halee5027/RecruitNova/internal/engine/taxonomy"
)

// defaultRequiredYears is the experience target assumed when the analyzer
// is called without role context.
const defaultRequiredYears = 3

// CourseRecommendation pairs a missing skill with the learning resources the
// taxonomy suggests for closing the gap.
type CourseRecommendation struct {
	Skill   string   `json:"skill"`
	Courses []string `json:"courses"`
}

// Analysis is the human-readable assessment of one resume/job pair.
type Analysis struct {
	Score                 int                    `json:"score"`
	MatchedSkills         []string               `json:"matched_skills"`
	MissingSkills         []string               `json:"missing_skills"`
	Summary               string                 `json:"summary"`
	Strengths             []string               `json:"strengths"`
	Weaknesses            []string               `json:"weaknesses"`
	CourseRecommendations []CourseRecommendation `json:"course_recommendations"`
}

// Analyze compares resume text with job text and derives matched/missing
// skills, a blended score, and templated strengths and weaknesses. Empty
// input on either side short-circuits to a zero-score result with an
// explanatory summary; it is never an error.
func Analyze(resumeText, jobText string) Analysis {
	if resumeText == "" || jobText == "" {
		return Analysis{
			MatchedSkills:         []string{},
			MissingSkills:         []string{},
			Summary:               "Job description or resume text is missing.",
			Strengths:             []string{},
			Weaknesses:            []string{},
			CourseRecommendations: []CourseRecommendation{},
		}
	}

	resumeSkills := skills.Extract(resumeText)
	jobSkills := skills.Extract(jobText)

	matched := skills.Intersect(resumeSkills, jobSkills)
	missing := skills.Missing(resumeSkills, jobSkills)

	var skillPct float64
	if len(jobSkills) > 0 {
		skillPct = float64(len(matched)) / float64(len(jobSkills)) * 100
	}

	years := experience.EstimateYears(resumeText)
	expPct := experience.Percentage(years, defaultRequiredYears)
	score := int(math.Round(scoring.FinalScore(skillPct, expPct)))

	strengths := make([]string, 0, 4)
	weaknesses := make([]string, 0, 4)

	switch {
	case score >= 70:
		strengths = append(strengths, "Strong overall match with the job description.")
	case score >= 40:
		strengths = append(strengths, "Moderate match; suitable for further review.")
		weaknesses = append(weaknesses, "Some important requirements are only partially met.")
	default:
		weaknesses = append(weaknesses, "Low overall match compared to the job description.")
	}

	if len(matched) > 0 {
		strengths = append(strengths, "Matched skills: "+listPreview(matched, 8))
	} else {
		weaknesses = append(weaknesses, "No clear overlap between resume skills and job description skills.")
	}

	if len(missing) > 0 {
		weaknesses = append(weaknesses, "Missing skills from the job description: "+listPreview(missing, 8))
	} else {
		strengths = append(strengths, "All detected job description skills are present in the resume.")
	}

	switch {
	case years == 0:
		weaknesses = append(weaknesses, "No clear experience mentioned.")
	case years < defaultRequiredYears:
		strengths = append(strengths, fmt.Sprintf("Has %d year(s) of experience, a bit below the %d-year target.", years, defaultRequiredYears))
	default:
		strengths = append(strengths, fmt.Sprintf("Has %d year(s) of experience, meets or exceeds the target.", years))
	}

	summary := fmt.Sprintf(
		"The resume matches about %d%% overall (skills + experience). Skill overlap is about %.1f%%. Detected experience: %d year(s).",
		score, skillPct, years,
	)

	return Analysis{
		Score:                 score,
		MatchedSkills:         matched,
		MissingSkills:         missing,
		Summary:               summary,
		Strengths:             strengths,
		Weaknesses:            weaknesses,
		CourseRecommendations: RecommendCourses(missing, maxCourseSkills),
	}
}

// maxCourseSkills bounds how many skill gaps get course suggestions so the
// report stays readable for postings with long requirement lists.
const maxCourseSkills = 5

// RecommendCourses maps each missing skill to the taxonomy's learning
// resources, up to limit skills. Skills without resources are skipped.
func RecommendCourses(missing []string, limit int) []CourseRecommendation {
	out := make([]CourseRecommendation, 0, limit)
	for _, skill := range missing {
		if len(out) >= limit {
			break
		}
		courses := taxonomy.Resources(skill)
		if len(courses) == 0 {
			continue
		}
		out = append(out, CourseRecommendation{Skill: skill, Courses: courses})
	}
	return out
}

func listPreview(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:limit], ", ") + " ..."
}
