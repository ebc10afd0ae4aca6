package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/snarg/captiond/internal/metrics"
)

const maxResponseBytes = 3 * 1024 * 1024

// Client fetches caption data from YouTube's public endpoints. It is the only
// part of the service that performs outbound network I/O. Failures are never
// retried; YouTube throttling surfaces as *UpstreamError.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a client for the public YouTube endpoints with the given
// per-request timeout.
func NewClient(timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://www.youtube.com",
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Fetch retrieves the first caption track matching the language preference
// list and returns its parsed content.
func (c *Client) Fetch(ctx context.Context, videoID string, languages []string, preserveFormatting bool) (*Transcript, error) {
	renderer, err := c.player(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, ok := selectTrack(renderer.CaptionTracks, languages)
	if !ok {
		return nil, &NoTranscriptFoundError{VideoID: videoID, Languages: languages}
	}

	data, err := c.fetchTimedtext(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	snippets, err := parseTimedtext(data, preserveFormatting)
	if err != nil {
		return nil, &UpstreamError{Op: "timedtext", Err: err}
	}

	c.log.Debug().
		Str("video_id", videoID).
		Str("language_code", track.LanguageCode).
		Bool("is_generated", track.isGenerated()).
		Int("snippets", len(snippets)).
		Msg("transcript fetched")

	return &Transcript{
		VideoID:      videoID,
		Language:     track.Name.String(),
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.isGenerated(),
		Snippets:     snippets,
	}, nil
}

// List returns the available caption tracks for a video without fetching
// their content.
func (c *Client) List(ctx context.Context, videoID string) ([]TrackInfo, error) {
	renderer, err := c.player(ctx, videoID)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(renderer.TranslationLanguages))
	for i, tl := range renderer.TranslationLanguages {
		codes[i] = tl.LanguageCode
	}

	infos := make([]TrackInfo, len(renderer.CaptionTracks))
	for i, t := range renderer.CaptionTracks {
		info := TrackInfo{
			Language:       t.Name.String(),
			LanguageCode:   t.LanguageCode,
			IsGenerated:    t.isGenerated(),
			IsTranslatable: t.IsTranslatable,
		}
		if t.IsTranslatable {
			info.TranslationLanguages = codes
		}
		infos[i] = info
	}
	return infos, nil
}

// player calls the Innertube /player endpoint and maps playability failures
// to the error taxonomy.
func (c *Client) player(ctx context.Context, videoID string) (*captionsRenderer, error) {
	payload, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: clientInfo{
				ClientName:        "ANDROID",
				ClientVersion:     androidClientVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, &UpstreamError{Op: "player", Err: err}
	}

	url := c.baseURL + "/youtubei/v1/player?prettyPrint=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &UpstreamError{Op: "player", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidClientVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("player", "error").Inc()
		return nil, &UpstreamError{Op: "player", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("player", "error").Inc()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, &UpstreamError{Op: "player", Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("player", "ok").Inc()

	var pr playerResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&pr); err != nil {
		return nil, &UpstreamError{Op: "player", Err: fmt.Errorf("decode response: %w", err)}
	}

	if ps := pr.PlayabilityStatus; ps != nil {
		switch ps.Status {
		case "", "OK":
			// playable
		case "LOGIN_REQUIRED":
			// YouTube demands a session — this is IP-level blocking of the
			// service, not a property of the video.
			return nil, &UpstreamError{Op: "player", Err: errors.New("request blocked by YouTube (login required)")}
		default:
			return nil, &VideoUnavailableError{VideoID: videoID, Reason: ps.Reason}
		}
	}

	if pr.Captions == nil || len(pr.Captions.Renderer.CaptionTracks) == 0 {
		return nil, &TranscriptsDisabledError{VideoID: videoID}
	}
	return &pr.Captions.Renderer, nil
}

// fetchTimedtext downloads the caption XML for a selected track.
func (c *Client) fetchTimedtext(ctx context.Context, trackURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, &UpstreamError{Op: "timedtext", Err: err}
	}
	req.Header.Set("User-Agent", androidUserAgent)
	req.Header.Set("Accept-Language", "en-US")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("timedtext", "error").Inc()
		return nil, &UpstreamError{Op: "timedtext", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("timedtext", "error").Inc()
		return nil, &UpstreamError{Op: "timedtext", Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("timedtext", "ok").Inc()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &UpstreamError{Op: "timedtext", Err: err}
	}
	return body, nil
}
