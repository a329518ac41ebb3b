package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/request"
	logpkg "github.com/kailas-cloud/shopsearch/internal/logger"
	healthuc "github.com/kailas-cloud/shopsearch/internal/usecase/health"
	historyuc "github.com/kailas-cloud/shopsearch/internal/usecase/history"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

// Sort modes accepted by /api/search.
const (
	sortRelevance = "relevance"
	sortCatalog   = "catalog"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// SearchDefaults are applied to /api/search parameters the caller leaves out.
type SearchDefaults struct {
	MinScore        int
	MaxResults      int
	Fuzzy           bool
	SortByRelevance bool
}

// Server serves the storefront search API.
type Server struct {
	search        *searchuc.Service
	history       *historyuc.Service
	health        *healthuc.Service
	defaults      SearchDefaults
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	history *historyuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		search:  search,
		history: history,
		health:  health,
		defaults: SearchDefaults{
			MinScore:        request.DefaultMinScore,
			MaxResults:      request.DefaultMaxResult,
			Fuzzy:           true,
			SortByRelevance: true,
		},
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable),
	}
	return s
}

// WithSearchDefaults overrides the defaults for omitted search parameters.
func (s *Server) WithSearchDefaults(d SearchDefaults) *Server {
	s.defaults = d
	return s
}

// Register mounts the API routes on r. History mutations require a bearer
// token from apiKeys; an empty list leaves them open.
func (s *Server) Register(r chi.Router, apiKeys []string) {
	r.Get("/health", s.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.ListProducts)
		r.Get("/products/{id}", s.GetProduct)
		r.Get("/products/category/{category}", s.ListCategoryProducts)
		r.Get("/categories", s.ListCategories)
		r.Get("/search", s.Search)
		r.Get("/suggestions", s.Suggestions)

		r.Get("/history", s.GetHistory)
		r.Group(func(r chi.Router) {
			r.Use(BearerAuthMiddleware(apiKeys))
			r.Post("/history", s.AddHistory)
			r.Delete("/history", s.ClearHistory)
		})
	})
}

// Handler returns a router with only the API routes mounted.
func (s *Server) Handler(apiKeys []string) http.Handler {
	r := chi.NewRouter()
	s.Register(r, apiKeys)
	return r
}

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.search.List(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, productsToDTO(entries))
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "product id must be a positive integer")
		return
	}

	e, err := s.search.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: productToDTO(&e)})
}

// ListCategoryProducts handles GET /api/products/category/{category}.
func (s *Server) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	entries, err := s.search.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, productsToDTO(entries))
}

// ListCategories handles GET /api/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.search.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, categoriesToDTO(cats))
}

// Search handles GET /api/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	req, err := s.searchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hits, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, hitsToDTO(hits))
}

func (s *Server) searchRequest(r *http.Request) (request.Request, error) {
	q := r.URL.Query()

	f, err := filterFromQuery(q)
	if err != nil {
		return request.Request{}, err
	}
	minScore, err := intParam(q, "min_score")
	if err != nil {
		return request.Request{}, err
	}
	maxResults, err := intParam(q, "max_results")
	if err != nil {
		return request.Request{}, err
	}
	fuzzy, err := boolParam(q, "fuzzy")
	if err != nil {
		return request.Request{}, err
	}
	highlight, err := boolParam(q, "highlight")
	if err != nil {
		return request.Request{}, err
	}

	p := request.Params{
		Query:           q.Get("q"),
		MinScore:        minScore,
		MaxResults:      maxResults,
		Fuzzy:           fuzzy,
		SortByRelevance: &s.defaults.SortByRelevance,
		Highlight:       highlight != nil && *highlight,
		Filter:          f,
	}
	if p.MinScore == nil {
		p.MinScore = &s.defaults.MinScore
	}
	if p.MaxResults == nil {
		p.MaxResults = &s.defaults.MaxResults
	}
	if p.Fuzzy == nil {
		p.Fuzzy = &s.defaults.Fuzzy
	}
	switch sortBy := q.Get("sort"); sortBy {
	case "":
	case sortRelevance:
		p.SortByRelevance = ptr(true)
	case sortCatalog:
		p.SortByRelevance = ptr(false)
	default:
		return request.Request{}, fmt.Errorf("sort must be %q or %q", sortRelevance, sortCatalog)
	}

	return request.New(p)
}

// Suggestions handles GET /api/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r.URL.Query(), "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}

	items, err := s.search.Suggest(r.Context(), r.URL.Query().Get("q"), n)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, suggestionsToDTO(items))
}

// GetHistory handles GET /api/history.
func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.history.Get(r.Context()))
}

// AddHistory handles POST /api/history.
func (s *Server) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	writeList(w, s.history.Add(r.Context(), req.Term))
}

// ClearHistory handles DELETE /api/history.
func (s *Server) ClearHistory(w http.ResponseWriter, r *http.Request) {
	s.history.Clear(r.Context())
	writeList(w, []string{})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthDTO{
		Status:         string(report.Status),
		Checks:         checks,
		CatalogEntries: report.CatalogEntries,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeList[T any](w http.ResponseWriter, items []T) {
	n := len(items)
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: items, Count: &n})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	var nf *domain.EntryNotFoundError
	if errors.As(err, &nf) {
		return "Product not found"
	}
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidQuery,
		domain.ErrInvalidFilter,
		domain.ErrCatalogUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func ptr[T any](v T) *T { return &v }
