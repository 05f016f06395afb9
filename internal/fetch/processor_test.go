package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/halee5027/RecruitNova/internal/queue"
	"github.com/halee5027/RecruitNova/internal/screening"
)

const processorResume = `John Doe
Senior Software Engineer with 5 years of experience building backend services.
Skills: Python, AWS, SQL, Docker, Kubernetes.
Led a team of engineers delivering cloud infrastructure and data pipelines.
Worked on scalable systems processing millions of requests per day.`

func TestProcessScreeningPersistsReportUnderJobID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(processorResume))
	}))
	defer srv.Close()

	repo := screening.NewMemoryRepo()
	proc := &Processor{
		Fetcher: &Fetcher{},
		Svc:     &screening.Service{Repo: repo},
	}

	msg := queue.Message{
		ScreeningID:    "job-1",
		SourceURL:      srv.URL + "/resume.txt",
		JobTitle:       "Backend Engineer",
		JobDescription: "Python, SQL, AWS, 3+ years experience",
		RequiredYears:  3,
	}
	if err := proc.ProcessScreening(context.Background(), msg); err != nil {
		t.Fatalf("process screening: %v", err)
	}

	result, err := repo.GetByID(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected successful screening, got error %q", result.Error)
	}
	if result.FinalScore != 100 {
		t.Fatalf("expected final score 100, got %v", result.FinalScore)
	}
	if result.JobTitle != "Backend Engineer" {
		t.Fatalf("unexpected job title %q", result.JobTitle)
	}
}

func TestProcessScreeningRecordsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	repo := screening.NewMemoryRepo()
	proc := &Processor{
		Fetcher: &Fetcher{},
		Svc:     &screening.Service{Repo: repo},
	}

	msg := queue.Message{
		ScreeningID:    "job-2",
		SourceURL:      srv.URL + "/gone.pdf",
		JobDescription: "Python",
	}
	if err := proc.ProcessScreening(context.Background(), msg); err != nil {
		t.Fatalf("process screening: %v", err)
	}

	result, err := repo.GetByID(context.Background(), "job-2")
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if result.Success {
		t.Fatal("expected failed screening")
	}
	if result.Error == "" {
		t.Fatal("expected failure message recorded")
	}
	if result.Recommendation != screening.RecommendNotScreened {
		t.Fatalf("unexpected recommendation %q", result.Recommendation)
	}
}

func TestProcessScreeningRecordsInvalidContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("tiny"))
	}))
	defer srv.Close()

	repo := screening.NewMemoryRepo()
	proc := &Processor{
		Fetcher: &Fetcher{},
		Svc:     &screening.Service{Repo: repo},
	}

	msg := queue.Message{
		ScreeningID:    "job-3",
		SourceURL:      srv.URL + "/tiny.txt",
		JobDescription: "Python",
	}
	if err := proc.ProcessScreening(context.Background(), msg); err != nil {
		t.Fatalf("process screening: %v", err)
	}

	result, err := repo.GetByID(context.Background(), "job-3")
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if result.Success {
		t.Fatal("expected failed screening")
	}
	if !strings.Contains(result.Error, "too small") {
		t.Fatalf("expected size failure detail, got %q", result.Error)
	}
}

func TestProcessScreeningNotConfigured(t *testing.T) {
	proc := &Processor{}
	if err := proc.ProcessScreening(context.Background(), queue.Message{ScreeningID: "job-4"}); err == nil {
		t.Fatal("expected error for unconfigured processor")
	}
}
