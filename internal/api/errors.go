package api

import (
	"errors"
	"net/http"

	"github.com/snarg/captiond/internal/youtube"
)

// errorStatus classifies an upstream failure into the HTTP status and
// machine-readable category the caller sees. Every failure kind produces a
// distinct category so clients can tell "captions disabled" from "video gone"
// from "we got throttled".
func errorStatus(err error) (int, string) {
	var (
		invalid  *youtube.InvalidInputError
		notFound *youtube.NoTranscriptFoundError
		disabled *youtube.TranscriptsDisabledError
		unavail  *youtube.VideoUnavailableError
		upstream *youtube.UpstreamError
	)
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, "invalid_input"
	case errors.As(err, &notFound):
		return http.StatusNotFound, "no_transcript_found"
	case errors.As(err, &disabled):
		return http.StatusNotFound, "transcripts_disabled"
	case errors.As(err, &unavail):
		return http.StatusNotFound, "video_unavailable"
	case errors.As(err, &upstream):
		return http.StatusBadGateway, "upstream_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
