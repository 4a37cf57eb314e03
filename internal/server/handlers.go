package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/vibegrid/pkg/buildinfo"
	"github.com/matzehuels/vibegrid/pkg/errors"
	vio "github.com/matzehuels/vibegrid/pkg/io"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
	"github.com/matzehuels/vibegrid/pkg/search"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

// =============================================================================
// Vibes
// =============================================================================

type vibeListResponse struct {
	Vibes     []vibe.Constraints `json:"vibes"`
	Aliases   map[string]string  `json:"aliases"`
	DefaultID string             `json:"default_id"`
}

func (s *Server) handleListVibes(w http.ResponseWriter, _ *http.Request) {
	resp := vibeListResponse{Vibes: vibe.All(), Aliases: map[string]string{}, DefaultID: vibe.DefaultID}
	for _, id := range vibe.IDs() {
		if target, ok := vibe.AliasOf(id); ok {
			resp.Aliases[id] = target
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVibe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := vibe.Lookup(id)
	if !ok {
		writeError(w, errNotFound("unknown vibe %q", id))
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// =============================================================================
// Layouts
// =============================================================================

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := vio.ReadRequest(r.Body, vio.FormatJSON)
	if err != nil {
		writeError(w, err)
		return
	}
	s.generate(w, r, req.PipelineOptions())
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	req, err := vio.ReadRequest(r.Body, vio.FormatJSON)
	if err != nil {
		writeError(w, err)
		return
	}
	opts := req.PipelineOptions()
	if opts.Count == 0 {
		opts.Count = DefaultBestCount
	}
	s.generate(w, r, opts)
}

// quickRequest is the body of /layouts/quick. Empty content fields take
// the defaults.
type quickRequest struct {
	VibeID      string             `json:"vibe_id"`
	ContentType layout.ContentType `json:"content_type"`
	Content     layout.Content     `json:"content"`
	Seed        *float64           `json:"seed,omitempty"`
	Options     search.Params      `json:"options,omitzero"`
}

func (s *Server) handleQuick(w http.ResponseWriter, r *http.Request) {
	var req quickRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	cfg := search.QuickConfig(req.VibeID, req.ContentType, req.Content)
	cfg.Seed = req.Seed
	s.generate(w, r, pipeline.Options{Config: cfg, Search: req.Options})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	opts.MaxCount = s.opts.MaxBestCount
	res, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req pipeline.ScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	for i, e := range req.Layout.Elements {
		if !e.Type.Valid() {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "element %d (%s): unknown type %q", i, e.ID, e.Type))
			return
		}
	}
	res, err := s.runner.Score(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
