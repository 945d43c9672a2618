package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/engine"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/oracle"
	"github.com/brightpath/tutor/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, _ := newTestServerWithStore(t)
	return srv
}

func newTestServerWithStore(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()
	cfg := config.Default()
	log := logging.NewNop()
	mem := store.NewMemory()

	narrator := oracle.NewNarrator(oracle.NewMockProvider(), oracle.DefaultNarratorConfig(), log)
	eng := engine.New(cfg, engine.Stores{
		Mastery:   mem,
		Responses: mem,
		Sessions:  mem.SessionRepo(),
		Plans:     mem.PlanRepo(),
	}, curriculum.Default(), narrator, nil, log)

	srv := httptest.NewServer(NewRouter(eng, log))
	t.Cleanup(srv.Close)
	return srv, mem
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

type sessionEnvelope struct {
	Session struct {
		ID    string `json:"id"`
		State string `json:"state"`
	} `json:"session"`
	Teaching string `json:"teaching"`
}

func startSession(t *testing.T, srv *httptest.Server, studentID, conceptID string) sessionEnvelope {
	t.Helper()
	resp := postJSON(t, srv.URL+"/api/sessions", map[string]any{
		"studentId": studentID,
		"conceptId": conceptID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start session: status %d", resp.StatusCode)
	}
	return decode[sessionEnvelope](t, resp)
}

func TestStartSession(t *testing.T) {
	srv := newTestServer(t)

	env := startSession(t, srv, "student-1", "ns-count-100")
	if env.Session.State != "teaching" {
		t.Fatalf("expected teaching state, got %q", env.Session.State)
	}
	if env.Teaching == "" {
		t.Fatal("expected teaching narrative (canned fallback at minimum)")
	}
}

func TestStartSession_UnknownConcept(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/sessions", map[string]any{
		"studentId": "student-1",
		"conceptId": "nope",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestStartSession_MissingFields(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/sessions", map[string]any{"studentId": "s"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSubmitAnswer_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	env := startSession(t, srv, "student-1", "ns-count-100")

	resp := postJSON(t, fmt.Sprintf("%s/api/sessions/%s/answers", srv.URL, env.Session.ID), map[string]any{
		"questionType":   "recall",
		"isCorrect":      true,
		"responseTimeMs": 4200,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	result := decode[struct {
		Session struct {
			State             string `json:"state"`
			QuestionsAnswered int    `json:"questionsAnswered"`
		} `json:"session"`
		Gate struct {
			InsufficientData bool `json:"insufficientData"`
		} `json:"gate"`
	}](t, resp)
	if result.Session.State != "practice" {
		t.Fatalf("expected practice, got %q", result.Session.State)
	}
	if result.Session.QuestionsAnswered != 1 {
		t.Fatalf("expected 1 answered, got %d", result.Session.QuestionsAnswered)
	}
	if !result.Gate.InsufficientData {
		t.Fatal("expected insufficient gate data")
	}
}

func TestHintFromTeaching_IsConflict(t *testing.T) {
	srv := newTestServer(t)
	env := startSession(t, srv, "student-1", "ns-count-100")

	// Hints are only legal from PRACTICE; the session is still TEACHING.
	resp := postJSON(t, fmt.Sprintf("%s/api/sessions/%s/hint", srv.URL, env.Session.ID), nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	body := decode[errorBody](t, resp)
	if body.Code != "invalid_transition" {
		t.Fatalf("expected invalid_transition code, got %q", body.Code)
	}
}

func TestEndSession_ThenGetSummary(t *testing.T) {
	srv := newTestServer(t)
	env := startSession(t, srv, "student-1", "ns-count-100")

	resp := postJSON(t, fmt.Sprintf("%s/api/sessions/%s/end", srv.URL, env.Session.ID), map[string]any{
		"emotionalState": "tired",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	summary := decode[struct {
		State             string `json:"state"`
		EmotionalStateEnd string `json:"emotionalStateEnd"`
	}](t, resp)
	if summary.State != "completed" {
		t.Fatalf("expected completed, got %q", summary.State)
	}
	if summary.EmotionalStateEnd != "tired" {
		t.Fatalf("expected emotional snapshot, got %q", summary.EmotionalStateEnd)
	}
}

func TestGeneratePlan_AndNext(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/plans", map[string]any{
		"goalId":      "goal-g3-math",
		"studentId":   "student-1",
		"weeklyHours": 3,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	plan := decode[struct {
		ID              string   `json:"id"`
		Status          string   `json:"status"`
		ConceptSequence []string `json:"conceptSequence"`
	}](t, resp)
	if plan.Status != store.PlanActive {
		t.Fatalf("expected active plan, got %q", plan.Status)
	}
	if len(plan.ConceptSequence) == 0 {
		t.Fatal("expected non-empty sequence")
	}

	nextResp, err := http.Get(fmt.Sprintf("%s/api/plans/%s/next", srv.URL, plan.ID))
	if err != nil {
		t.Fatalf("GET next: %v", err)
	}
	if nextResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", nextResp.StatusCode)
	}
	next := decode[struct {
		Node struct {
			ID string `json:"id"`
		} `json:"node"`
	}](t, nextResp)
	if next.Node.ID != plan.ConceptSequence[0] {
		t.Fatalf("expected cursor at %q, got %q", plan.ConceptSequence[0], next.Node.ID)
	}
}

func TestGeneratePlan_DuplicateGoalConflict(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]any{"goalId": "goal-g3-math", "studentId": "student-1", "weeklyHours": 3}
	resp := postJSON(t, srv.URL+"/api/plans", body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	dup := postJSON(t, srv.URL+"/api/plans", body)
	if dup.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", dup.StatusCode)
	}
	errBody := decode[errorBody](t, dup)
	if errBody.Code != "plan_conflict" {
		t.Fatalf("expected plan_conflict, got %q", errBody.Code)
	}
}

func TestGeneratePlan_UnknownGoal(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/plans", map[string]any{
		"goalId": "goal-missing", "studentId": "student-1", "weeklyHours": 3,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestBranchTree(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/students/student-1/branches")
	if err != nil {
		t.Fatalf("GET branches: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	tree := decode[struct {
		Statuses []struct {
			Unlocked bool `json:"unlocked"`
		} `json:"statuses"`
	}](t, resp)
	if len(tree.Statuses) == 0 {
		t.Fatal("expected branches in tree")
	}
	unlockedAny := false
	for _, b := range tree.Statuses {
		unlockedAny = unlockedAny || b.Unlocked
	}
	if !unlockedAny {
		t.Fatal("expected at least one unlocked branch for a new student")
	}
}

func TestEvaluateGate_InsufficientData(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/students/student-1/gate/ns-count-100")
	if err != nil {
		t.Fatalf("GET gate: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	result := decode[struct {
		Passed           bool `json:"passed"`
		InsufficientData bool `json:"insufficientData"`
	}](t, resp)
	if !result.Passed || !result.InsufficientData {
		t.Fatalf("expected unconditional pass on empty history, got %+v", result)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestReviewQueueAndProbe(t *testing.T) {
	srv, mem := newTestServerWithStore(t)

	err := mem.Create(context.Background(), &store.MasteryRecord{
		StudentID:      "student-1",
		ConceptID:      "ns-count-100",
		BKTProbability: 0.96,
		Level:          "mastered",
		NextReviewAt:   time.Now().AddDate(0, 0, -3),
	})
	if err != nil {
		t.Fatalf("seed record: %v", err)
	}

	resp, err := http.Get(srv.URL + "/api/students/student-1/reviews")
	if err != nil {
		t.Fatalf("GET reviews: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	queue := decode[struct {
		Items []struct {
			ConceptID string `json:"conceptId"`
			Status    string `json:"status"`
		} `json:"items"`
	}](t, resp)
	if len(queue.Items) != 1 || queue.Items[0].ConceptID != "ns-count-100" {
		t.Fatalf("expected ns-count-100 in the review queue, got %+v", queue.Items)
	}

	resp = postJSON(t, srv.URL+"/api/students/student-1/reviews/ns-count-100", map[string]any{"score": 0.9})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("record probe: expected 200, got %d", resp.StatusCode)
	}
	rec := decode[struct {
		RetentionScore *float64 `json:"retentionScore"`
	}](t, resp)
	if rec.RetentionScore == nil || *rec.RetentionScore != 0.9 {
		t.Fatalf("expected retention score 0.9 echoed back, got %v", rec.RetentionScore)
	}

	// A passing probe reschedules the review into the future.
	resp, err = http.Get(srv.URL + "/api/students/student-1/reviews")
	if err != nil {
		t.Fatalf("GET reviews: %v", err)
	}
	queue = decode[struct {
		Items []struct {
			ConceptID string `json:"conceptId"`
			Status    string `json:"status"`
		} `json:"items"`
	}](t, resp)
	if len(queue.Items) != 0 {
		t.Fatalf("expected empty queue after a passing probe, got %+v", queue.Items)
	}
}

func TestRecordRetentionProbe_Validation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/students/student-1/reviews/ns-count-100", map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing score: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, err := http.Post(srv.URL+"/api/students/student-1/reviews/ns-count-100", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("post malformed body: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/students/student-1/reviews/never-practiced", map[string]any{"score": 0.9})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown record: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
