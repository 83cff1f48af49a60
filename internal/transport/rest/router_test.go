package rest

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"pathfinder/internal/cache"
	"pathfinder/internal/catalog"
	"pathfinder/internal/config"
	"pathfinder/internal/logger"
	"pathfinder/internal/model"
	"pathfinder/internal/service"
	"pathfinder/internal/transport/ws"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the redis caches and mongo repositories.

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]model.QuizSession
	answers  map[string]model.AnswerMap
	locks    map[string]bool
}

func (m *memSessions) Save(ctx context.Context, s *model.QuizSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *memSessions) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	s.Answers = m.answers[id].Clone()
	return &s, nil
}

func (m *memSessions) SaveAnswer(ctx context.Context, s *model.QuizSession, qid int, answer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[s.ID] {
		return cache.ErrLocked
	}
	if m.answers[s.ID] == nil {
		m.answers[s.ID] = model.AnswerMap{}
	}
	m.answers[s.ID][qid] = answer
	m.sessions[s.ID] = *s
	return nil
}

func (m *memSessions) Lock(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[id] {
		return false, nil
	}
	m.locks[id] = true
	return true, nil
}

func (m *memSessions) Unlock(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, id)
	return nil
}

type memResults struct {
	mu sync.Mutex
	m  map[string]model.AnalysisOutcome
}

func (r *memResults) Set(ctx context.Context, id string, o *model.AnalysisOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[id] = *o
	return nil
}

func (r *memResults) Get(ctx context.Context, id string) (*model.AnalysisOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

type memReports struct {
	mu sync.Mutex
	m  map[string]model.Report
}

func (r *memReports) Save(ctx context.Context, rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[rep.SessionID] = *rep
	return nil
}

func (r *memReports) GetBySession(ctx context.Context, id string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	return &rep, nil
}

type memCatalogs struct {
	mu sync.Mutex
	m  map[string]model.CatalogUpload
}

func (c *memCatalogs) Create(ctx context.Context, u *model.CatalogUpload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[u.ID] = *u
	return nil
}

func (c *memCatalogs) GetByID(ctx context.Context, id string) (*model.CatalogUpload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.m[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (c *memCatalogs) List(ctx context.Context) ([]model.CatalogUpload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []model.CatalogUpload{}
	for _, u := range c.m {
		out = append(out, u)
	}
	return out, nil
}

type stubAnalyzer struct {
	mu      sync.Mutex
	outcome *model.AnalysisOutcome
	err     error
	calls   int
}

func (a *stubAnalyzer) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisOutcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.outcome, nil
}

type testAPI struct {
	handler  http.Handler
	analyzer *stubAnalyzer
	auth     *service.AuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := logger.Nop()
	auth := service.NewAuthService(config.AuthConfig{
		JWTSecret:          "test-secret",
		AdminUsername:      "admin",
		AdminPassword:      "hunter2",
		AdminTokenTTL:      time.Hour,
		RespondentTokenTTL: time.Hour,
	})
	catalogs := service.NewCatalogService(&memCatalogs{m: map[string]model.CatalogUpload{}}, catalog.Default(), log)
	reports := service.NewReportService(&memReports{m: map[string]model.Report{}})
	analyzer := &stubAnalyzer{outcome: &model.AnalysisOutcome{
		Result: service.FallbackResult(model.TrackUndergraduate, ""),
	}}
	sessions := &memSessions{
		sessions: map[string]model.QuizSession{},
		answers:  map[string]model.AnswerMap{},
		locks:    map[string]bool{},
	}
	quizSvc := service.NewQuizService(sessions, &memResults{m: map[string]model.AnalysisOutcome{}}, reports, analyzer, catalogs, auth, time.Minute, log)

	h := NewRouter(&Container{
		Server: config.ServerConfig{
			CORSAllowedOrigins: []string{"https://app.example.com"},
			CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		AuthService:    auth,
		QuizService:    quizSvc,
		ReportService:  reports,
		CatalogService: catalogs,
		WSHub:          ws.NewHub(log),
		Logger:         log,
	})
	return &testAPI{handler: h, analyzer: analyzer, auth: auth}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// start opens a graduate session and answers all five questions.
func (a *testAPI) start(t *testing.T, answer bool) (string, string) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{"track": "UG"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp model.StartSessionResponse
	decode(t, rec, &resp)

	if answer {
		for _, q := range resp.Questions {
			path := fmt.Sprintf("/v1/sessions/%s/answers/%d", resp.Session.ID, q.ID)
			rec := a.do(t, http.MethodPut, path, resp.Token, map[string]string{"answer": "My answer"})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		}
	}
	return resp.Session.ID, resp.Token
}

func TestHealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pathfinder_")
}

func TestCORSPreflight(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/sessions", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")

	req = httptest.NewRequest(http.MethodOptions, "/v1/sessions", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestQuestions(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/v1/questions?track=12", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var questions []model.Question
	decode(t, rec, &questions)
	require.Len(t, questions, 5)
	assert.Equal(t, model.InputChoice, questions[2].InputType)

	rec = api.do(t, http.MethodGet, "/v1/questions?track=phd", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionFlow(t *testing.T) {
	api := newTestAPI(t)
	id, token := api.start(t, true)

	rec := api.do(t, http.MethodGet, "/v1/sessions/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var session model.QuizSession
	decode(t, rec, &session)
	assert.Len(t, session.Answers, 5)

	rec = api.do(t, http.MethodGet, "/v1/sessions/"+id+"/report", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/sessions/"+id+"/analyze", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var outcome model.AnalysisOutcome
	decode(t, rec, &outcome)
	assert.False(t, outcome.Cached)
	assert.Len(t, outcome.Result.Recommendations, 3)

	rec = api.do(t, http.MethodPost, "/v1/sessions/"+id+"/analyze", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &outcome)
	assert.True(t, outcome.Cached)
	assert.Equal(t, 1, api.analyzer.calls)

	rec = api.do(t, http.MethodGet, "/v1/sessions/"+id+"/report", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var report model.Report
	decode(t, rec, &report)
	assert.Equal(t, id, report.SessionID)
	assert.Equal(t, model.TrackUndergraduate, report.Track)
}

func TestStartSessionValidation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{"track": "phd"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]interface{}
	decode(t, rec, &body)
	assert.NotEmpty(t, body["fields"])

	rec = api.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{"track": "UG", "catalogId": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnswerErrors(t *testing.T) {
	api := newTestAPI(t)
	id, token := api.start(t, false)

	rec := api.do(t, http.MethodPut, "/v1/sessions/"+id+"/answers/9", token, map[string]string{"answer": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPut, "/v1/sessions/"+id+"/answers/1", token, map[string]string{"answer": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/sessions/"+id+"/analyze", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, api.analyzer.calls)
}

func TestRespondentAuth(t *testing.T) {
	api := newTestAPI(t)
	id, _ := api.start(t, false)
	_, otherToken := api.start(t, false)

	rec := api.do(t, http.MethodGet, "/v1/sessions/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/sessions/"+id, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/sessions/"+id, "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnalyzeStuckIsRetryable(t *testing.T) {
	api := newTestAPI(t)
	id, token := api.start(t, true)
	api.analyzer.err = service.ErrAnalysisStuck

	rec := api.do(t, http.MethodPost, "/v1/sessions/"+id+"/analyze", token, nil)
	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	var body map[string]interface{}
	decode(t, rec, &body)
	assert.Equal(t, service.StuckMessage, body["error"])
	assert.Equal(t, true, body["retryable"])
}

func adminToken(t *testing.T, api *testAPI) string {
	t.Helper()
	rec := api.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"username": "admin", "password": "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.LoginResponse
	decode(t, rec, &resp)
	return resp.Token
}

func catalogCSV() string {
	zeros := strings.TrimSuffix(strings.Repeat("0,", len(catalog.Vocabulary)-1), ",")
	return strings.Join([]string{
		"BA,BA,History,0.8," + zeros,
		"MA,MA,History,0.6," + zeros,
	}, "\n")
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogAdmin(t *testing.T) {
	api := newTestAPI(t)
	token := adminToken(t, api)

	rec := api.do(t, http.MethodGet, "/v1/admin/catalog/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/admin/catalog/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats catalog.Stats
	decode(t, rec, &stats)
	assert.Equal(t, catalog.Default().Len(), stats.Total)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/catalogs?name=History", strings.NewReader(catalogCSV()))
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Catalog model.CatalogUpload `json:"catalog"`
		Stats   catalog.Stats       `json:"stats"`
	}
	decode(t, rec, &created)
	assert.Equal(t, "History", created.Catalog.Name)
	assert.Equal(t, 1, created.Stats.Undergraduate)
	assert.Equal(t, 1, created.Stats.Postgraduate)

	rec = api.do(t, http.MethodGet, "/v1/admin/catalogs/"+created.Catalog.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(t, http.MethodGet, "/v1/admin/catalogs/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/admin/catalogs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.CatalogUpload
	decode(t, rec, &list)
	assert.Len(t, list, 1)

	// a respondent may start a session against the upload
	rec = api.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{"track": "12", "catalogId": created.Catalog.ID})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCatalogUploadMultipart(t *testing.T) {
	api := newTestAPI(t)
	token := adminToken(t, api)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Multipart"))
	part, err := mw.CreateFormFile("file", "weights.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(catalogCSV()))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/catalogs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/v1/admin/catalogs", strings.NewReader("not,a,catalog"))
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
