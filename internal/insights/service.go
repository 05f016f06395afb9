// Package insights exposes the advisory engines: the keyword-gap
// optimizer and the performance and growth predictors. Unlike screening,
// nothing here is persisted; every report is recomputed per request.
package insights

import (
	"math/rand"

	"github.com/halee5027/RecruitNova/internal/engine/experience"
	"github.com/halee5027/RecruitNova/internal/engine/keywords"
	"github.com/halee5027/RecruitNova/internal/engine/predict"
	"github.com/halee5027/RecruitNova/internal/engine/skills"
)

// Service bundles the advisory engines behind one construction point.
type Service struct {
	Optimizer *keywords.Optimizer
	Predictor *predict.PerformancePredictor
}

// NewService constructs a Service with default engine configuration.
func NewService() *Service {
	return &Service{
		Optimizer: keywords.New(nil),
		Predictor: &predict.PerformancePredictor{},
	}
}

// Optimize runs the keyword-gap report for one resume/job pair.
func (s *Service) Optimize(resumeText, jobText string) keywords.Optimization {
	return s.Optimizer.Optimize(resumeText, jobText)
}

// OptimizeSeeded is Optimize with the ATS jitter pinned to a seed, so
// repeated calls with the same inputs produce the same report.
func (s *Service) OptimizeSeeded(resumeText, jobText string, seed int64) keywords.Optimization {
	return keywords.New(rand.New(rand.NewSource(seed))).Optimize(resumeText, jobText)
}

// PredictPerformance profiles the resume text and runs the performance
// predictor over it.
func (s *Service) PredictPerformance(resumeText string) predict.PerformancePrediction {
	found := skills.Extract(resumeText)
	years := experience.EstimateYears(resumeText)
	return s.Predictor.Predict(resumeText, float64(years), found)
}

// PredictGrowth profiles the resume text and runs the growth predictor.
func (s *Service) PredictGrowth(resumeText string) predict.GrowthPrediction {
	found := skills.Extract(resumeText)
	years := experience.EstimateYears(resumeText)
	return predict.PredictGrowth(resumeText, float64(years), found)
}
