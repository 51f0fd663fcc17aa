package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/domain"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	logpkg "github.com/kailas-cloud/jobboard/internal/logger"
	healthuc "github.com/kailas-cloud/jobboard/internal/usecase/health"
	"github.com/kailas-cloud/jobboard/internal/version"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the jobboard HTTP API.
type Server struct {
	jobs          JobService
	applications  ApplicationService
	search        SearchService
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	jobs JobService,
	applications ApplicationService,
	search SearchService,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		jobs:         jobs,
		applications: applications,
		search:       search,
		health:       health,
		logger:       logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrJobNotFound, http.StatusNotFound, ErrorCodeJobNotFound),
	}
	return s
}

// Routes registers the API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/jobs", s.CreateJob)
	r.Get("/jobs", s.listJobs)
	r.Get("/jobs/search", s.searchJobs)
	r.Get("/jobs/{id}", s.withJobID(s.GetJob))
	r.Post("/jobs/{id}/apply", s.withJobID(s.ApplyToJob))
	r.Get("/applications", s.listApplications)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateJob handles POST /jobs.
func (s *Server) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	j, err := s.jobs.Create(r.Context(), req.Title, req.Description, req.Location)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, jobToDTO(j))
}

// ListJobs handles GET /jobs.
func (s *Server) ListJobs(w http.ResponseWriter, r *http.Request, params ListJobsParams) {
	jobs, err := s.jobs.List(r.Context(), deref(params.Keyword), deref(params.Location))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jobsToDTO(jobs))
}

// SearchJobs handles GET /jobs/search.
func (s *Server) SearchJobs(w http.ResponseWriter, r *http.Request, params SearchJobsParams) {
	page := s.search.Page(deref(params.Page), deref(params.Limit))
	req := query.FacetRequest{
		Keyword:  deref(params.Keyword),
		Location: deref(params.Location),
		Created:  query.DateRange{From: deref(params.DateFrom), To: deref(params.DateTo)},
		Page:     page,
	}

	res := s.search.SearchWithFacets(r.Context(), req)
	writeJSON(w, http.StatusOK, searchToDTO(res, page))
}

// GetJob handles GET /jobs/{id}.
func (s *Server) GetJob(w http.ResponseWriter, r *http.Request, id int64) {
	d, err := s.jobs.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jobDetailToDTO(d))
}

// ApplyToJob handles POST /jobs/{id}/apply.
func (s *Server) ApplyToJob(w http.ResponseWriter, r *http.Request, id int64) {
	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	r = r.WithContext(logpkg.With(r.Context(), zap.Int64("job_id", id)))
	a, err := s.applications.Apply(r.Context(), id, req.ApplicantName, req.Email, req.ResumeURL)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, applicationToDTO(a))
}

// ListApplications handles GET /applications.
func (s *Server) ListApplications(w http.ResponseWriter, r *http.Request, params ListApplicationsParams) {
	listing, err := s.applications.List(r.Context(), params.JobID, deref(params.Page), deref(params.Limit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToDTO(listing))
}

// HealthCheck handles GET /health. Only a relational store failure is a 503;
// a degraded search index still serves traffic.
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

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	params, err := bindListJobsParams(r)
	if err != nil {
		s.paramError(w, err)
		return
	}
	s.ListJobs(w, r, params)
}

func (s *Server) searchJobs(w http.ResponseWriter, r *http.Request) {
	params, err := bindSearchJobsParams(r)
	if err != nil {
		s.paramError(w, err)
		return
	}
	s.SearchJobs(w, r, params)
}

func (s *Server) listApplications(w http.ResponseWriter, r *http.Request) {
	params, err := bindListApplicationsParams(r)
	if err != nil {
		s.paramError(w, err)
		return
	}
	s.ListApplications(w, r, params)
}

func (s *Server) withJobID(h func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bindJobID(r)
		if err != nil {
			s.paramError(w, err)
			return
		}
		h(w, r, id)
	}
}

func (s *Server) paramError(w http.ResponseWriter, err error) {
	msg := "invalid request"
	var pe *InvalidParamFormatError
	if errors.As(err, &pe) {
		msg = "invalid parameter " + pe.ParamName
	}
	writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// validationHandler reports the validation message without the sentinel prefix.
func validationHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrValidation) {
		return false
	}
	msg := domain.ErrValidation.Error()
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		msg = ve.Message
	}
	writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
