package screening

import (
	"context"
	"strings"
	"testing"
)

const (
	sampleResume = "5 years Python developer, AWS, SQL"
	sampleJob    = "Python, SQL, AWS, 3+ years experience"
)

func TestScreenPerfectMatch(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	got, err := svc.Screen(context.Background(), []byte(sampleResume), "resume.txt", "Backend Engineer", sampleJob, 3)
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}

	if !got.Success {
		t.Fatalf("expected success, got error %q", got.Error)
	}
	if got.FinalScore != 100 {
		t.Errorf("final score = %v, want 100", got.FinalScore)
	}
	if got.SkillMatchPercentage != 100 || got.ExperienceMatchPercentage != 100 {
		t.Errorf("sub-scores = %v / %v, want 100 / 100", got.SkillMatchPercentage, got.ExperienceMatchPercentage)
	}
	wantSkills := []string{"aws", "python", "sql"}
	if len(got.Skills) != len(wantSkills) {
		t.Fatalf("skills = %v, want %v", got.Skills, wantSkills)
	}
	for i, s := range wantSkills {
		if got.Skills[i] != s {
			t.Errorf("skills[%d] = %q, want %q", i, got.Skills[i], s)
		}
	}
	if got.ExperienceYears != 5 {
		t.Errorf("years = %d, want 5", got.ExperienceYears)
	}
	if got.ExperienceLevel != "Mid-level" {
		t.Errorf("level = %q, want Mid-level", got.ExperienceLevel)
	}
	if got.Recommendation != RecommendStrong {
		t.Errorf("recommendation = %q", got.Recommendation)
	}
	if got.FitLabel != "Strongly Fit" {
		t.Errorf("fit label = %q", got.FitLabel)
	}
	if len(got.Strengths) != 3 {
		t.Errorf("strengths = %v", got.Strengths)
	}
	if len(got.Weaknesses) != 0 {
		t.Errorf("weaknesses = %v", got.Weaknesses)
	}

	// Persisted and retrievable.
	stored, err := svc.Get(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.FinalScore != got.FinalScore {
		t.Errorf("stored score = %v", stored.FinalScore)
	}
}

func TestScreenEmptyResume(t *testing.T) {
	svc := &Service{}
	got, err := svc.Screen(context.Background(), nil, "empty.txt", "", sampleJob, 3)
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if got.Success {
		t.Error("expected failure entry")
	}
	if got.Error == "" {
		t.Error("expected error message")
	}
	if got.FinalScore != 0 {
		t.Errorf("final score = %v, want 0", got.FinalScore)
	}
	if got.Recommendation != RecommendNotScreened {
		t.Errorf("recommendation = %q", got.Recommendation)
	}
	if got.Summary == "" {
		t.Error("expected explanatory summary")
	}
}

func TestScreenUnreadableDocumentDegrades(t *testing.T) {
	svc := &Service{}
	got, err := svc.Screen(context.Background(), []byte("%PDF-1.7 garbage"), "broken.pdf", "", sampleJob, 3)
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if got.Success {
		t.Error("expected failure entry for unreadable document")
	}
}

func TestScreenFresher(t *testing.T) {
	svc := &Service{}
	got, err := svc.Screen(context.Background(), []byte("Fresher, no experience, knows HTML and CSS"), "fresher.txt", "", sampleJob, 3)
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if got.ExperienceYears != 0 {
		t.Errorf("years = %d, want 0", got.ExperienceYears)
	}
	if got.ExperienceLevel != "Fresher" {
		t.Errorf("level = %q, want Fresher", got.ExperienceLevel)
	}
	found := false
	for _, w := range got.Weaknesses {
		if strings.Contains(w, "No professional experience") {
			found = true
		}
	}
	if !found {
		t.Errorf("weaknesses = %v, want no-experience entry", got.Weaknesses)
	}
}

func TestScreenSuggestsCoursesForSkillGaps(t *testing.T) {
	svc := &Service{}
	got, err := svc.Screen(context.Background(), []byte("2 years Python developer"), "gap.txt", "", "Python, Docker and Kubernetes required", 3)
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if len(got.LearningResources) == 0 {
		t.Fatalf("expected learning resources for missing skills %v", got.MissingSkills)
	}
	foundDocker := false
	for _, lr := range got.LearningResources {
		if len(lr.Courses) == 0 {
			t.Errorf("no courses for %q", lr.Skill)
		}
		if lr.Skill == "docker" {
			foundDocker = true
		}
	}
	if !foundDocker {
		t.Errorf("expected docker courses, got %v", got.LearningResources)
	}
}

func TestScreenBatchRanksDescending(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Workers: 2}

	items := []BatchItem{
		{Data: []byte("Fresher, no experience, knows HTML and CSS"), Filename: "weak.txt"},
		{Data: []byte(sampleResume), Filename: "strong.txt"},
		{Data: nil, Filename: "broken.txt"},
	}
	results, err := svc.ScreenBatch(context.Background(), items, "Backend Engineer", sampleJob, 3)
	if err != nil {
		t.Fatalf("ScreenBatch: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}

	if results[0].Filename != "strong.txt" {
		t.Errorf("top result = %q, want strong.txt", results[0].Filename)
	}
	// Zero-score entries keep their input order.
	if results[1].Filename != "weak.txt" || results[2].Filename != "broken.txt" {
		t.Errorf("tail order = %q, %q", results[1].Filename, results[2].Filename)
	}
	if results[2].Success {
		t.Error("empty document should be a failure entry")
	}

	stored, err := repo.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 3 {
		t.Errorf("stored %d results, want 3", len(stored))
	}
}

func TestScreenBatchEmpty(t *testing.T) {
	svc := &Service{}
	results, err := svc.ScreenBatch(context.Background(), nil, "", sampleJob, 3)
	if err != nil {
		t.Fatalf("ScreenBatch: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestRecommendBuckets(t *testing.T) {
	cases := []struct {
		final, skill, exp float64
		want              string
	}{
		{90, 80, 80, RecommendStrong},
		{85, 60, 80, RecommendGood},
		{70, 75, 40, RecommendGood},
		{65, 50, 85, RecommendGood},
		{62, 50, 50, RecommendModerate},
		{45, 40, 40, RecommendNotAdvised},
		{20, 10, 10, RecommendNotQualified},
	}
	for _, c := range cases {
		if got := Recommend(c.final, c.skill, c.exp); got != c.want {
			t.Errorf("Recommend(%v,%v,%v) = %q, want %q", c.final, c.skill, c.exp, got, c.want)
		}
	}
}
