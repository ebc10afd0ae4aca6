package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/snarg/captiond/internal/metrics"
	"github.com/snarg/captiond/internal/youtube"
)

// Fetcher is the upstream caption capability the handlers depend on.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string, preserveFormatting bool) (*youtube.Transcript, error)
	List(ctx context.Context, videoID string) ([]youtube.TrackInfo, error)
}

// TranscriptRequest is the submit-by-body request. The GET endpoint builds
// the same request from path and query parameters.
type TranscriptRequest struct {
	URLOrID            string   `json:"url_or_id"`
	Languages          []string `json:"languages,omitempty"`
	Format             string   `json:"format,omitempty"`
	PreserveFormatting bool     `json:"preserve_formatting,omitempty"`
}

// TranscriptResponse carries one fetched caption track. Transcript is either
// the structured snippet sequence (format=json) or the space-joined text
// (format=text).
type TranscriptResponse struct {
	VideoID      string `json:"video_id"`
	Language     string `json:"language"`
	LanguageCode string `json:"language_code"`
	IsGenerated  bool   `json:"is_generated"`
	Transcript   any    `json:"transcript"`
}

// TranscriptListResponse lists the caption tracks available for a video.
type TranscriptListResponse struct {
	VideoID              string              `json:"video_id"`
	AvailableTranscripts []youtube.TrackInfo `json:"available_transcripts"`
}

type TranscriptHandler struct {
	yt           Fetcher
	defaultLangs []string
}

func NewTranscriptHandler(yt Fetcher, defaultLangs []string) *TranscriptHandler {
	return &TranscriptHandler{yt: yt, defaultLangs: defaultLangs}
}

func (h *TranscriptHandler) Routes(r chi.Router) {
	r.Post("/transcript", h.Submit)
	r.Get("/transcript/{videoID}", h.GetByID)
	r.Get("/list/{videoID}", h.ListTracks)
}

// Submit extracts a transcript from a request body.
func (h *TranscriptHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req TranscriptRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.serve(w, r, req)
}

// GetByID is the query-parameter variant of Submit.
func (h *TranscriptHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	req := TranscriptRequest{
		URLOrID:   chi.URLParam(r, "videoID"),
		Languages: QueryStringList(r, "languages"),
		Format:    r.URL.Query().Get("format"),
	}
	b, ok, err := QueryBool(r, "preserve_formatting")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if ok {
		req.PreserveFormatting = b
	}
	h.serve(w, r, req)
}

func (h *TranscriptHandler) serve(w http.ResponseWriter, r *http.Request, req TranscriptRequest) {
	if req.URLOrID == "" {
		WriteError(w, http.StatusBadRequest, "url_or_id is required")
		return
	}
	format := req.Format
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		WriteError(w, http.StatusBadRequest, `format must be "json" or "text"`)
		return
	}
	languages := req.Languages
	if len(languages) == 0 {
		languages = h.defaultLangs
	}

	videoID, err := youtube.ExtractVideoID(req.URLOrID)
	if err != nil {
		h.writeFailure(w, r, "fetch", err)
		return
	}

	t, err := h.yt.Fetch(r.Context(), videoID, languages, req.PreserveFormatting)
	if err != nil {
		h.writeFailure(w, r, "fetch", err)
		return
	}
	metrics.TranscriptRequestsTotal.WithLabelValues("fetch", "ok").Inc()

	// video_id always echoes the normalizer output.
	resp := TranscriptResponse{
		VideoID:      videoID,
		Language:     t.Language,
		LanguageCode: t.LanguageCode,
		IsGenerated:  t.IsGenerated,
	}
	if format == "text" {
		resp.Transcript = t.Text()
	} else {
		resp.Transcript = t.Snippets
	}
	WriteJSON(w, http.StatusOK, resp)
}

// ListTracks returns available caption tracks without their content.
func (h *TranscriptHandler) ListTracks(w http.ResponseWriter, r *http.Request) {
	videoID, err := youtube.ExtractVideoID(chi.URLParam(r, "videoID"))
	if err != nil {
		h.writeFailure(w, r, "list", err)
		return
	}

	tracks, err := h.yt.List(r.Context(), videoID)
	if err != nil {
		h.writeFailure(w, r, "list", err)
		return
	}
	metrics.TranscriptRequestsTotal.WithLabelValues("list", "ok").Inc()

	WriteJSON(w, http.StatusOK, TranscriptListResponse{
		VideoID:              videoID,
		AvailableTranscripts: tracks,
	})
}

func (h *TranscriptHandler) writeFailure(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status, category := errorStatus(err)
	metrics.TranscriptRequestsTotal.WithLabelValues(operation, category).Inc()

	detail := err.Error()
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("unexpected handler failure")
		detail = "unexpected internal error"
	} else {
		hlog.FromRequest(r).Warn().Err(err).Str("category", category).Msg("request failed")
	}
	WriteErrorDetail(w, status, category, detail)
}
