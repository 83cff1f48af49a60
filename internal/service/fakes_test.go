package service

import (
	"context"
	"pathfinder/internal/cache"
	"pathfinder/internal/catalog"
	"pathfinder/internal/model"
	"sync"
	"time"
)

type fakeExtractor struct {
	profile *model.SemanticProfile
	err     error
	block   bool // wait for the context to end
	calls   int
}

func (f *fakeExtractor) Extract(ctx context.Context, transcript string, track model.Track) (*model.SemanticProfile, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.profile, f.err
}

type fakeNarrator struct {
	result *model.AnalysisResult
	err    error
	got    NarrativeRequest
	calls  int
}

func (f *fakeNarrator) Narrate(ctx context.Context, req NarrativeRequest) (*model.AnalysisResult, error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeCatalogs struct {
	def    *catalog.Catalog
	custom map[string]*catalog.Catalog
}

func (f *fakeCatalogs) Resolve(ctx context.Context, id string) (*catalog.Catalog, error) {
	if id == "" {
		return f.def, nil
	}
	if c, ok := f.custom[id]; ok {
		return c, nil
	}
	return nil, ErrCatalogNotFound
}

type recordingBroadcaster struct {
	mu           sync.Mutex
	events       []model.ProgressEvent
	disconnected []string
}

func (b *recordingBroadcaster) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ev, ok := payload.(model.ProgressEvent); ok && msgType == MsgProgress {
		b.events = append(b.events, ev)
	}
}

func (b *recordingBroadcaster) DisconnectSession(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disconnected = append(b.disconnected, sessionID)
}

func (b *recordingBroadcaster) stages() []model.AnalysisStage {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.AnalysisStage, len(b.events))
	for i, ev := range b.events {
		out[i] = ev.Stage
	}
	return out
}

type fakeAnalyzer struct {
	outcome *model.AnalysisOutcome
	err     error
	calls   int
	got     model.AnalysisRequest
	during  func() // runs while the analysis is in flight
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisOutcome, error) {
	f.calls++
	f.got = req
	if f.during != nil {
		f.during()
	}
	return f.outcome, f.err
}

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]model.QuizSession
	answers  map[string]model.AnswerMap
	locks    map[string]bool
}

func newMemorySessions() *memorySessions {
	return &memorySessions{
		sessions: map[string]model.QuizSession{},
		answers:  map[string]model.AnswerMap{},
		locks:    map[string]bool{},
	}
}

func (m *memorySessions) Save(ctx context.Context, session *model.QuizSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := *session
	s.Answers = nil
	m.sessions[session.ID] = s
	return nil
}

func (m *memorySessions) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	s.Answers = m.answers[id].Clone()
	return &s, nil
}

func (m *memorySessions) SaveAnswer(ctx context.Context, session *model.QuizSession, questionID int, answer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[session.ID] {
		return cache.ErrLocked
	}
	if m.answers[session.ID] == nil {
		m.answers[session.ID] = model.AnswerMap{}
	}
	m.answers[session.ID][questionID] = answer
	s := *session
	s.Answers = nil
	m.sessions[session.ID] = s
	return nil
}

func (m *memorySessions) Lock(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[id] {
		return false, nil
	}
	m.locks[id] = true
	return true, nil
}

func (m *memorySessions) Unlock(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, id)
	return nil
}

type memoryResults struct {
	mu       sync.Mutex
	outcomes map[string]model.AnalysisOutcome
}

func (m *memoryResults) Set(ctx context.Context, sessionID string, outcome *model.AnalysisOutcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = map[string]model.AnalysisOutcome{}
	}
	m.outcomes[sessionID] = *outcome
	return nil
}

func (m *memoryResults) Get(ctx context.Context, sessionID string) (*model.AnalysisOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.outcomes[sessionID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

type memoryReports struct {
	mu      sync.Mutex
	reports map[string]model.Report
}

func (m *memoryReports) Save(ctx context.Context, report *model.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reports == nil {
		m.reports = map[string]model.Report{}
	}
	m.reports[report.SessionID] = *report
	return nil
}

func (m *memoryReports) GetBySession(ctx context.Context, sessionID string) (*model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[sessionID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

type memoryCatalogRepo struct {
	mu      sync.Mutex
	uploads map[string]model.CatalogUpload
	gets    int
}

func (m *memoryCatalogRepo) Create(ctx context.Context, upload *model.CatalogUpload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.uploads == nil {
		m.uploads = map[string]model.CatalogUpload{}
	}
	m.uploads[upload.ID] = *upload
	return nil
}

func (m *memoryCatalogRepo) GetByID(ctx context.Context, id string) (*model.CatalogUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	u, ok := m.uploads[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryCatalogRepo) List(ctx context.Context) ([]model.CatalogUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.CatalogUpload, 0, len(m.uploads))
	for _, u := range m.uploads {
		out = append(out, u)
	}
	return out, nil
}
