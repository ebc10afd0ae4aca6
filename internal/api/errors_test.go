package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/snarg/captiond/internal/youtube"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCategory string
	}{
		{"invalid_input", &youtube.InvalidInputError{Input: "x!"}, http.StatusBadRequest, "invalid_input"},
		{"no_transcript", &youtube.NoTranscriptFoundError{VideoID: "v", Languages: []string{"ko"}}, http.StatusNotFound, "no_transcript_found"},
		{"disabled", &youtube.TranscriptsDisabledError{VideoID: "v"}, http.StatusNotFound, "transcripts_disabled"},
		{"unavailable", &youtube.VideoUnavailableError{VideoID: "v"}, http.StatusNotFound, "video_unavailable"},
		{"upstream", &youtube.UpstreamError{Op: "player", Err: errors.New("boom")}, http.StatusBadGateway, "upstream_error"},
		{"wrapped_upstream", fmt.Errorf("fetch: %w", &youtube.UpstreamError{Op: "timedtext", Err: errors.New("boom")}), http.StatusBadGateway, "upstream_error"},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category := errorStatus(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if category != tt.wantCategory {
				t.Errorf("category = %q, want %q", category, tt.wantCategory)
			}
		})
	}
}
