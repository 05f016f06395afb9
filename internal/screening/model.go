package screening

import (
	"time"

	"github.com/halee5027/RecruitNova/internal/engine/analyzer"
)

// Result is one screened resume scored against a job description.
type Result struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	JobTitle string `json:"job_title"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`

	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	ExperienceLevel string   `json:"experience_level"`

	SkillMatchPercentage      float64 `json:"skill_match_percentage"`
	ExperienceMatchPercentage float64 `json:"experience_match_percentage"`
	FinalScore                float64 `json:"final_score"`
	FitLabel                  string  `json:"fit_label"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`

	Recommendation    string                          `json:"recommendation"`
	Summary           string                          `json:"summary"`
	LearningResources []analyzer.CourseRecommendation `json:"learning_resources"`

	CreatedAt time.Time `json:"created_at"`
}

// Score implements scoring.Scored so batches rank with the shared sorter.
func (r Result) Score() float64 { return r.FinalScore }

// BatchItem is one resume in a bulk screening request.
type BatchItem struct {
	Data     []byte
	Filename string
}
