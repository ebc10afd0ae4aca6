package youtube

import (
	"fmt"
	"strings"
)

// InvalidInputError reports a string that could not be normalized to a video ID.
type InvalidInputError struct {
	Input string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("not a recognizable YouTube URL or video ID: %q", e.Input)
}

// NoTranscriptFoundError reports that no caption track matches any of the
// requested languages.
type NoTranscriptFoundError struct {
	VideoID   string
	Languages []string
}

func (e *NoTranscriptFoundError) Error() string {
	return fmt.Sprintf("no transcript found for video %s in requested languages [%s]",
		e.VideoID, strings.Join(e.Languages, ", "))
}

// TranscriptsDisabledError reports a video whose captions are turned off.
type TranscriptsDisabledError struct {
	VideoID string
}

func (e *TranscriptsDisabledError) Error() string {
	return fmt.Sprintf("transcripts are disabled for video %s", e.VideoID)
}

// VideoUnavailableError reports a video that is missing, private, or
// region-blocked.
type VideoUnavailableError struct {
	VideoID string
	Reason  string
}

func (e *VideoUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("video %s is unavailable: %s", e.VideoID, e.Reason)
	}
	return fmt.Sprintf("video %s is unavailable", e.VideoID)
}

// UpstreamError reports a transport-level or throttling failure talking to
// YouTube. It is transient from the caller's point of view but is never
// retried here.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
