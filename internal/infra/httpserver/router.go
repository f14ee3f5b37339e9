package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	appanalysis "github.com/aryanpyx/finsight/internal/application/analysis"
	appfiles "github.com/aryanpyx/finsight/internal/application/files"
	appproposal "github.com/aryanpyx/finsight/internal/application/proposal"
	appusers "github.com/aryanpyx/finsight/internal/application/users"
	domai "github.com/aryanpyx/finsight/internal/domain/ai"
	domfiles "github.com/aryanpyx/finsight/internal/domain/files"
	domusers "github.com/aryanpyx/finsight/internal/domain/users"
	"github.com/aryanpyx/finsight/internal/middleware"
)

type Router struct {
	filesSvc       *appfiles.Service
	analysisSvc    *appanalysis.Service
	proposalSvc    *appproposal.Service
	usersSvc       *appusers.Service
	maxUploadBytes int64
}

// NewRouter mounts the API routes. health may be nil; the liveness
// handler is used then.
func NewRouter(filesSvc *appfiles.Service, analysisSvc *appanalysis.Service, proposalSvc *appproposal.Service, usersSvc *appusers.Service, health http.HandlerFunc, maxUploadBytes int64) http.Handler {
	r := &Router{
		filesSvc:       filesSvc,
		analysisSvc:    analysisSvc,
		proposalSvc:    proposalSvc,
		usersSvc:       usersSvc,
		maxUploadBytes: maxUploadBytes,
	}
	mux := chi.NewRouter()

	if health == nil {
		health = middleware.LivenessHandler
	}
	mux.Get("/health", health)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(rt chi.Router) {
		rt.Post("/files/upload", r.wrap("Failed to upload file", r.handleUpload))
		rt.Get("/files", r.wrap("Failed to fetch files", r.handleListFiles))
		rt.Post("/analysis/start", r.wrap("Failed to analyze data", r.handleStartAnalysis))
		rt.Get("/analysis/results", r.wrap("Failed to fetch analysis results", r.handleListResults))
		rt.Post("/proposal/generate", r.wrap("Failed to generate proposal", r.handleGenerateProposal))
		rt.Get("/proposal/latest", r.wrap("Failed to fetch proposal", r.handleLatestProposal))
		rt.Get("/proposals", r.wrap("Failed to fetch proposals", r.handleListProposals))
		rt.Post("/demo/load", r.wrap("Failed to load demo data", r.handleLoadDemo))
		rt.Post("/auth/signup", r.wrap("Failed to create user", r.handleSignup))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps domain errors to status codes. Client input errors carry
// their own short message; everything else is surfaced as the generic
// fallback with the cause logged server-side.
func (r *Router) wrap(fallback string, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case isClientError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domfiles.ErrNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domai.ErrQuotaExceeded):
			respondError(w, http.StatusTooManyRequests, "ai quota exceeded")
		default:
			log.Printf("%s: %v", fallback, err)
			respondError(w, http.StatusInternalServerError, fallback)
		}
	}
}

func isClientError(err error) bool {
	for _, target := range []error{
		domfiles.ErrMissingFile,
		domfiles.ErrUnknownType,
		domfiles.ErrUnsupportedFormat,
		domfiles.ErrUnknownDemoType,
		domfiles.ErrTooLarge,
		domusers.ErrMissingCredentials,
		domusers.ErrUsernameTaken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// POST /api/files/upload
// multipart: file, type
func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUploadBytes)
	if err := req.ParseMultipartForm(r.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domfiles.ErrTooLarge
		}
		return domfiles.ErrMissingFile
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		return domfiles.ErrMissingFile
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	f, err := r.filesSvc.Upload(req.Context(), appfiles.UploadCommand{
		OriginalName: middleware.SanitizeFilename(header.Filename),
		Type:         req.FormValue("type"),
		Size:         header.Size,
		Data:         data,
	})
	if err != nil {
		return err
	}

	middleware.IncrementUploads()
	return respondJSON(w, f)
}

// GET /api/files
func (r *Router) handleListFiles(w http.ResponseWriter, req *http.Request) error {
	list, err := r.filesSvc.List(req.Context())
	if err != nil {
		return err
	}
	return respondJSON(w, list)
}

// POST /api/analysis/start
func (r *Router) handleStartAnalysis(w http.ResponseWriter, req *http.Request) error {
	middleware.IncrementAnalyses()
	results, err := r.analysisSvc.Run(req.Context())
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	return respondJSON(w, map[string]any{
		"success": true,
		"results": results,
	})
}

// GET /api/analysis/results
func (r *Router) handleListResults(w http.ResponseWriter, req *http.Request) error {
	results, err := r.analysisSvc.List(req.Context())
	if err != nil {
		return err
	}
	return respondJSON(w, results)
}

// POST /api/proposal/generate
// Body: {"clientName": "..."} (optional)
func (r *Router) handleGenerateProposal(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ClientName string `json:"clientName"`
	}
	if req.Body != nil {
		// body optional, decode errors ignored
		_ = json.NewDecoder(req.Body).Decode(&body)
	}

	p, err := r.proposalSvc.Generate(req.Context(), middleware.SanitizeString(body.ClientName))
	if err != nil {
		return err
	}

	middleware.IncrementProposals()
	return respondJSON(w, p)
}

// GET /api/proposal/latest
// Responds with JSON null when no proposal exists yet.
func (r *Router) handleLatestProposal(w http.ResponseWriter, req *http.Request) error {
	p, err := r.proposalSvc.Latest(req.Context())
	if err != nil {
		return err
	}
	return respondJSON(w, p)
}

// GET /api/proposals
func (r *Router) handleListProposals(w http.ResponseWriter, req *http.Request) error {
	list, err := r.proposalSvc.List(req.Context())
	if err != nil {
		return err
	}
	return respondJSON(w, list)
}

// POST /api/demo/load
// Body: {"type": "contract"|"logs"|"licenses"}
func (r *Router) handleLoadDemo(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domfiles.ErrUnknownDemoType
	}

	f, err := r.filesSvc.LoadDemo(req.Context(), body.Type)
	if err != nil {
		return err
	}

	middleware.IncrementUploads()
	return respondJSON(w, f)
}

// POST /api/auth/signup
func (r *Router) handleSignup(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domusers.ErrMissingCredentials
	}
	if err := middleware.ValidateUsername(body.Username); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil
	}

	u, err := r.usersSvc.Signup(req.Context(), body.Username, body.Password)
	if err != nil {
		return err
	}
	return respondJSON(w, u)
}
