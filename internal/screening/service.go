package screening

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/halee5027/RecruitNova/internal/engine/analyzer"
	"github.com/halee5027/RecruitNova/internal/engine/experience"
	"github.com/halee5027/RecruitNova/internal/engine/extract"
	"github.com/halee5027/RecruitNova/internal/engine/scoring"
	"github.com/halee5027/RecruitNova/internal/engine/skills"
	"github.com/halee5027/RecruitNova/internal/shared/metrics"
	"github.com/halee5027/RecruitNova/internal/shared/storage/object"
	"github.com/halee5027/RecruitNova/internal/shared/telemetry"
)

// DefaultRequiredYears is assumed when a request does not state how much
// experience the role needs.
const DefaultRequiredYears = 3

// Service screens resumes against job descriptions and persists the
// resulting reports. Repo and Store are optional; a nil Repo skips
// persistence and a nil Store skips archiving the raw upload.
type Service struct {
	Repo    Repo
	Store   object.ObjectStore
	Workers int
}

// Screen runs the single-resume flow: extract text, profile the candidate,
// score against the job description, and persist the report. Unreadable
// documents and missing inputs degrade to a zero-score result instead of an
// error; only persistence failures propagate.
func (s *Service) Screen(ctx context.Context, data []byte, filename, jobTitle, jobDescription string, requiredYears int) (Result, error) {
	return s.ScreenWithID(ctx, uuid.NewString(), data, filename, jobTitle, jobDescription, requiredYears)
}

// ScreenWithID is Screen with a caller-chosen report ID. The queue worker
// uses it so a job can reference its report before the job runs.
func (s *Service) ScreenWithID(ctx context.Context, id string, data []byte, filename, jobTitle, jobDescription string, requiredYears int) (Result, error) {
	start := time.Now()
	metrics.IncScreeningStarted()

	result := s.screen(id, data, filename, jobTitle, jobDescription, requiredYears)

	if s.Store != nil && len(data) > 0 {
		if _, _, _, err := s.Store.Save(ctx, result.ID, filename, bytes.NewReader(data)); err != nil {
			telemetry.Error("screening archive failed", map[string]any{
				"screeningId": result.ID,
				"error":       err.Error(),
			})
		}
	}

	if s.Repo != nil {
		if err := s.Repo.Create(ctx, result); err != nil {
			metrics.IncScreeningFailed()
			return Result{}, fmt.Errorf("persist screening: %w", err)
		}
	}

	metrics.ObserveScreeningDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if result.Success {
		metrics.IncScreeningCompleted()
	} else {
		metrics.IncScreeningFailed()
	}

	telemetry.Info("resume screened", map[string]any{
		"screeningId": result.ID,
		"filename":    filename,
		"finalScore":  result.FinalScore,
		"success":     result.Success,
	})
	return result, nil
}

// RecordFailure persists a report for a screening that never reached the
// scoring pipeline, such as a queued job whose resume could not be fetched.
func (s *Service) RecordFailure(ctx context.Context, id, filename, jobTitle, message string) (Result, error) {
	result := Result{
		ID:                id,
		Filename:          filename,
		JobTitle:          jobTitle,
		Error:             message,
		Skills:            []string{},
		MatchedSkills:     []string{},
		MissingSkills:     []string{},
		Strengths:         []string{},
		Weaknesses:        []string{},
		LearningResources: []analyzer.CourseRecommendation{},
		ExperienceLevel:   string(experience.ClassifyLevel(0)),
		FitLabel:          scoring.FitLabel(0),
		Recommendation:    RecommendNotScreened,
		CreatedAt:         time.Now().UTC(),
	}
	if s.Repo != nil {
		if err := s.Repo.Create(ctx, result); err != nil {
			return Result{}, fmt.Errorf("persist screening: %w", err)
		}
	}
	telemetry.Error("screening failed before scoring", map[string]any{
		"screeningId": id,
		"error":       message,
	})
	return result, nil
}

// screen is the pure scoring pipeline, free of I/O.
func (s *Service) screen(id string, data []byte, filename, jobTitle, jobDescription string, requiredYears int) Result {
	if requiredYears < 0 {
		requiredYears = DefaultRequiredYears
	}

	result := Result{
		ID:                id,
		Filename:          filename,
		JobTitle:          jobTitle,
		Skills:            []string{},
		MatchedSkills:     []string{},
		MissingSkills:     []string{},
		Strengths:         []string{},
		Weaknesses:        []string{},
		LearningResources: []analyzer.CourseRecommendation{},
		Recommendation:    RecommendNotScreened,
		CreatedAt:         time.Now().UTC(),
	}

	resumeText := extract.Text(data, filename)
	if resumeText == "" || jobDescription == "" {
		result.Error = "missing resume text or job description"
		result.Summary = analyzer.Analyze(resumeText, jobDescription).Summary
		result.FitLabel = scoring.FitLabel(0)
		result.ExperienceLevel = string(experience.ClassifyLevel(0))
		return result
	}

	found := skills.Extract(resumeText)
	years := experience.EstimateYears(resumeText)
	skillMatch := skills.MatchJob(found, jobDescription)
	expMatch := experience.Percentage(years, requiredYears)
	finalScore := scoring.FinalScore(skillMatch, expMatch)

	analysis := analyzer.Analyze(resumeText, jobDescription)

	result.Success = true
	result.Skills = found
	result.ExperienceYears = years
	result.ExperienceLevel = string(experience.ClassifyLevel(years))
	result.SkillMatchPercentage = round1(skillMatch)
	result.ExperienceMatchPercentage = round1(expMatch)
	result.FinalScore = finalScore
	result.FitLabel = scoring.FitLabel(finalScore)
	result.MatchedSkills = analysis.MatchedSkills
	result.MissingSkills = analysis.MissingSkills
	result.Summary = analysis.Summary
	result.LearningResources = analysis.CourseRecommendations
	result.Strengths, result.Weaknesses = assess(skillMatch, expMatch, years, requiredYears, found)
	result.Recommendation = Recommend(finalScore, skillMatch, expMatch)
	return result
}

// ScreenBatch screens every item against one shared job description.
// Items run concurrently under a bounded worker pool; a failed item becomes
// a failure entry in place rather than aborting the batch. The returned
// slice is ranked by final score descending, ties keeping upload order.
func (s *Service) ScreenBatch(ctx context.Context, items []BatchItem, jobTitle, jobDescription string, requiredYears int) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	workers := s.Workers
	if workers <= 0 {
		workers = 4
	}

	results := make([]Result, len(items))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, item BatchItem) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.screen(uuid.NewString(), item.Data, item.Filename, jobTitle, jobDescription, requiredYears)
		}(i, item)
	}
	wg.Wait()

	scoring.Rank(results)

	if s.Repo != nil {
		for _, r := range results {
			if err := s.Repo.Create(ctx, r); err != nil {
				return nil, fmt.Errorf("persist screening %s: %w", r.ID, err)
			}
		}
	}

	telemetry.Info("batch screened", map[string]any{
		"count":    len(results),
		"jobTitle": jobTitle,
	})
	return results, nil
}

// Get returns a stored screening report.
func (s *Service) Get(ctx context.Context, id string) (Result, error) {
	if s.Repo == nil {
		return Result{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns stored reports, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Result, error) {
	if s.Repo == nil {
		return []Result{}, nil
	}
	return s.Repo.List(ctx, limit, offset)
}

// assess derives human-readable strengths and weaknesses from the scores.
func assess(skillMatch, expMatch float64, years, requiredYears int, found []string) (strengths, weaknesses []string) {
	strengths = []string{}
	weaknesses = []string{}

	switch {
	case skillMatch >= 80:
		strengths = append(strengths, "Excellent skill alignment with job requirements")
	case skillMatch >= 60:
		strengths = append(strengths, "Good match with key job skills")
	case skillMatch >= 40:
		strengths = append(strengths, "Moderate skill match - some alignment")
	default:
		weaknesses = append(weaknesses, "Low skill match - may need training")
	}

	switch {
	case expMatch >= 90:
		strengths = append(strengths, "Perfect experience level for the role")
	case expMatch >= 70:
		strengths = append(strengths, "Adequate experience for the position")
	case years > 0:
		if years < requiredYears {
			weaknesses = append(weaknesses, fmt.Sprintf("Below required %d+ years (Has %d years)", requiredYears, years))
		} else {
			strengths = append(strengths, "Has relevant experience")
		}
	default:
		weaknesses = append(weaknesses, "No professional experience found")
	}

	if len(found) > 0 {
		strengths = append(strengths, fmt.Sprintf("Found %d relevant skills", len(found)))
	}
	return strengths, weaknesses
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
