package service

import (
	"context"
	"fmt"
	"pathfinder/internal/catalog"
	"pathfinder/internal/logger"
	"pathfinder/internal/model"
	"pathfinder/internal/repository"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CatalogSource resolves the catalog an analysis runs against.
type CatalogSource interface {
	Resolve(ctx context.Context, id string) (*catalog.Catalog, error)
}

// CatalogService serves the embedded default catalog and uploaded custom
// catalogs. Parsed custom catalogs are memoized by id; uploads are immutable
// so entries never go stale.
type CatalogService struct {
	repo     repository.CatalogRepo
	fallback *catalog.Catalog
	parsed   sync.Map // id -> *catalog.Catalog
	log      *logger.Logger
}

func NewCatalogService(repo repository.CatalogRepo, defaultCatalog *catalog.Catalog, log *logger.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		fallback: defaultCatalog,
		log:      log.With("component", "catalog"),
	}
}

// Default returns the built-in catalog.
func (s *CatalogService) Default() *catalog.Catalog {
	return s.fallback
}

// Resolve returns the default catalog for an empty id, or the parsed custom
// catalog with that id.
func (s *CatalogService) Resolve(ctx context.Context, id string) (*catalog.Catalog, error) {
	if id == "" {
		return s.fallback, nil
	}
	if c, ok := s.parsed.Load(id); ok {
		return c.(*catalog.Catalog), nil
	}

	upload, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", id, err)
	}
	if upload == nil {
		return nil, ErrCatalogNotFound
	}

	c := catalog.New(catalog.ParseString(upload.CSV))
	actual, _ := s.parsed.LoadOrStore(id, c)
	return actual.(*catalog.Catalog), nil
}

// Upload parses and stores a custom weights CSV. A file without a single
// usable row is rejected.
func (s *CatalogService) Upload(ctx context.Context, name, csv, uploadedBy string) (*model.CatalogUpload, catalog.Stats, error) {
	c := catalog.New(catalog.ParseString(csv))
	if c.Len() == 0 {
		return nil, catalog.Stats{}, ErrEmptyCatalog
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Custom catalog " + time.Now().UTC().Format("2006-01-02 15:04")
	}
	upload := &model.CatalogUpload{
		ID:         uuid.New().String(),
		Name:       name,
		CSV:        csv,
		Programs:   c.Len(),
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, upload); err != nil {
		return nil, catalog.Stats{}, fmt.Errorf("failed to store catalog: %w", err)
	}
	s.parsed.Store(upload.ID, c)

	stats := c.Stats()
	s.log.Info("custom catalog uploaded", "id", upload.ID, "programs", upload.Programs, "orphans", len(stats.Orphans))
	return upload, stats, nil
}

// Get returns an upload's metadata with the stats of its parsed catalog.
func (s *CatalogService) Get(ctx context.Context, id string) (*model.CatalogUpload, catalog.Stats, error) {
	upload, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.Stats{}, err
	}
	if upload == nil {
		return nil, catalog.Stats{}, ErrCatalogNotFound
	}
	c, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, catalog.Stats{}, err
	}
	return upload, c.Stats(), nil
}

func (s *CatalogService) List(ctx context.Context) ([]model.CatalogUpload, error) {
	return s.repo.List(ctx)
}
