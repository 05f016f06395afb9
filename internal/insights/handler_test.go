package insights_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/halee5027/RecruitNova/internal/insights"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	insights.NewHandler(insights.NewService()).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestOptimizeEndpoint(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(t, router, "/api/v1/optimize", `{
		"resume_text": "Go developer with Docker experience",
		"job_description": "We need Python and Kubernetes and Docker"
	}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var out struct {
		KeywordsToAdd []string `json:"keywords_to_add"`
		ATSBefore     int      `json:"ats_before"`
		ATSAfter      int      `json:"ats_after"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, w := range out.KeywordsToAdd {
		if w == "kubernetes" {
			found = true
		}
	}
	if !found {
		t.Errorf("keywords_to_add = %v, want kubernetes", out.KeywordsToAdd)
	}
	if out.ATSBefore < 15 || out.ATSBefore > 95 || out.ATSAfter < out.ATSBefore {
		t.Errorf("ats scores = %d / %d", out.ATSBefore, out.ATSAfter)
	}
}

func TestOptimizeEndpointValidation(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(t, router, "/api/v1/optimize", `{"resume_text": "only one side"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestPerformancePredictionEndpoint(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(t, router, "/api/v1/predictions/performance", `{
		"resume_text": "Senior Python engineer with 6 years experience, led a team of 8, AWS certified"
	}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var out struct {
		OverallScore    float64 `json:"overall_score"`
		Rating          string  `json:"rating"`
		DimensionScores struct {
			TechnicalExcellence float64 `json:"technical_excellence"`
		} `json:"dimension_scores"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.OverallScore <= 0 || out.OverallScore > 100 {
		t.Errorf("overall = %v", out.OverallScore)
	}
	if out.Rating == "" {
		t.Error("expected a rating")
	}
	if out.DimensionScores.TechnicalExcellence <= 30 {
		t.Errorf("technical = %v, want above the base offset", out.DimensionScores.TechnicalExcellence)
	}
}

func TestGrowthPredictionEndpoint(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(t, router, "/api/v1/predictions/growth", `{
		"resume_text": "Promoted to lead after shipping Kubernetes migration, mentor, AWS certified"
	}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var out struct {
		OverallScore    float64  `json:"overall_score"`
		TimeToNextLevel string   `json:"time_to_next_level"`
		GrowthBlockers  []string `json:"growth_blockers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.OverallScore <= 0 || out.OverallScore > 100 {
		t.Errorf("overall = %v", out.OverallScore)
	}
	if out.TimeToNextLevel == "" {
		t.Error("expected a time-to-next-level band")
	}
	if len(out.GrowthBlockers) == 0 {
		t.Error("expected at least one blocker entry")
	}
}

func TestPredictionEndpointValidation(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/api/v1/predictions/performance", "/api/v1/predictions/growth"} {
		resp := postJSON(t, router, path, `{}`)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, resp.Code)
		}
	}
}

func TestOptimizeEndpointSeedPinsReport(t *testing.T) {
	router := newTestRouter()

	body := `{
		"resume_text": "Experienced engineer with Python and SQL building data services for analytics teams.",
		"job_description": "Looking for Python, SQL, Docker, Kubernetes and Terraform experience.",
		"seed": 7
	}`

	first := postJSON(t, router, "/api/v1/optimize", body)
	second := postJSON(t, router, "/api/v1/optimize", body)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status = %d / %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("expected identical reports for the same seed")
	}
}
