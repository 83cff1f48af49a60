package handler

import (
	"io"
	"mime"
	"net/http"
	"pathfinder/internal/catalog"
	"pathfinder/internal/model"
	"pathfinder/internal/service"
	"pathfinder/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

const maxCatalogBytes = 10 << 20

// CatalogHandler handles custom catalog administration
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// CatalogResponse pairs an upload with the stats of its parsed catalog
type CatalogResponse struct {
	Catalog *model.CatalogUpload `json:"catalog"`
	Stats   catalog.Stats        `json:"stats"`
}

// Upload handles POST /v1/admin/catalogs
//
// @Summary Upload a custom weights CSV
// @Description Accepts multipart form data (file, name) or a raw text/csv body with ?name=.
// @Tags admin
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Security BearerAuth
// @Param file formData file false "Weights CSV"
// @Param name formData string false "Display name"
// @Success 201 {object} CatalogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No usable rows"
// @Router /admin/catalogs [post]
func (h *CatalogHandler) Upload(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.GetAdminID(r.Context())
	if adminID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	name, data, err := readCatalogUpload(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	upload, stats, err := h.catalogSvc.Upload(r.Context(), name, data, adminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CatalogResponse{Catalog: upload, Stats: stats})
}

func readCatalogUpload(w http.ResponseWriter, r *http.Request) (string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCatalogBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxCatalogBytes); err != nil {
			return "", "", err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", "", err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", err
		}
		return r.FormValue("name"), string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", "", err
	}
	return r.URL.Query().Get("name"), string(data), nil
}

// Get handles GET /v1/admin/catalogs/{id}
//
// @Summary Custom catalog metadata and stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog ID"
// @Success 200 {object} CatalogResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/catalogs/{id} [get]
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	upload, stats, err := h.catalogSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogResponse{Catalog: upload, Stats: stats})
}

// List handles GET /v1/admin/catalogs
//
// @Summary Uploaded catalogs, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CatalogUpload
// @Router /admin/catalogs [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.catalogSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if uploads == nil {
		uploads = []model.CatalogUpload{}
	}
	writeJSON(w, http.StatusOK, uploads)
}

// DefaultStats handles GET /v1/admin/catalog/stats
//
// @Summary Partition stats of the built-in catalog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} catalog.Stats
// @Router /admin/catalog/stats [get]
func (h *CatalogHandler) DefaultStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogSvc.Default().Stats())
}
