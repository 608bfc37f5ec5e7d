package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cynllun-cli/internal/leads"
	"cynllun-cli/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGen struct {
	activities string
	rubric     string
	err        error
}

func (f fakeGen) Activities(ctx context.Context, planContext string) (string, error) {
	return f.activities, f.err
}

func (f fakeGen) Rubric(ctx context.Context, req llm.RubricRequest) (string, error) {
	return f.rubric, f.err
}

func newTestServer(t *testing.T, gen llm.Generator) (*Server, leads.FileStore) {
	t.Helper()
	store := leads.FileStore{Dir: t.TempDir()}
	srv, err := NewServer(ServerConfig{Gen: gen, Leads: store})
	require.NoError(t, err)
	return srv, store
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewServerRequiresLeadStore(t *testing.T) {
	_, err := NewServer(ServerConfig{})
	require.Error(t, err)
}

func TestGenerateHappyPath(t *testing.T) {
	srv, _ := newTestServer(t, fakeGen{activities: "1. 🏰 Castle Detectives\nExplore."})
	w := post(t, srv.Handler(), "/api/generate", `{"context":"TOPIC: Castles\n"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1. 🏰 Castle Detectives\nExplore.", resp["activities"])
}

func TestGenerateMissingContext(t *testing.T) {
	srv, _ := newTestServer(t, fakeGen{})
	w := post(t, srv.Handler(), "/api/generate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing context")
}

func TestGenerateNotConfigured(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	w := post(t, srv.Handler(), "/api/generate", `{"context":"TOPIC: x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "API key not configured")
}

func TestGenerateUpstreamFailure(t *testing.T) {
	srv, _ := newTestServer(t, fakeGen{err: &llm.UpstreamError{Op: "generate activities", Err: errors.New("rate limited")}})
	w := post(t, srv.Handler(), "/api/generate", `{"context":"TOPIC: x"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI service error", resp["error"])
	assert.Equal(t, "rate limited", resp["details"])
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, fakeGen{})
	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRegisterAppendsLead(t *testing.T) {
	srv, store := newTestServer(t, nil)
	w := post(t, srv.Handler(), "/api/register",
		`{"name":"Siân Davies","email":"sian@example.com","school":"Ysgol y Garn","planType":"ai","timestamp":"2026-03-09T10:00:00Z"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	all, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Siân Davies", all[0].Name)
	assert.Equal(t, "ai", all[0].PlanType)
	assert.Equal(t, 2026, all[0].SavedAt.Year())
}

func TestRegisterValidation(t *testing.T) {
	srv, store := newTestServer(t, nil)

	for _, body := range []string{`{}`, `{"name":"X"}`, `{"email":"x@example.com"}`} {
		w := post(t, srv.Handler(), "/api/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%s", body)
	}
	all, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "rejected registrations must not be stored")
}

func TestRegisterDefaultsPlanTypeAndTimestamp(t *testing.T) {
	srv, store := newTestServer(t, nil)
	w := post(t, srv.Handler(), "/api/register", `{"name":"Rhys","email":"rhys@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	all, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "pdf", all[0].PlanType)
	assert.False(t, all[0].SavedAt.IsZero())
}

func TestRubricValidation(t *testing.T) {
	srv, _ := newTestServer(t, fakeGen{rubric: `{"title":"T"}`})

	w := post(t, srv.Handler(), "/api/rubric", `{"progressionStep":"Step 3"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "step alone is not enough")

	for _, body := range []string{
		`{"area":"Humanities"}`,
		`{"customOutcomes":"Can read a map"}`,
		`{"taskDescription":"Fieldwork report"}`,
	} {
		w := post(t, srv.Handler(), "/api/rubric", body)
		assert.Equal(t, http.StatusOK, w.Code, "body=%s", body)
	}
}

func TestRubricReturnsRawText(t *testing.T) {
	srv, _ := newTestServer(t, fakeGen{rubric: `{"title":"Enquiry Rubric","criteria":[]}`})
	w := post(t, srv.Handler(), "/api/rubric", `{"area":"Humanities"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, `{"title":"Enquiry Rubric","criteria":[]}`, resp["rubric"])
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())
}
