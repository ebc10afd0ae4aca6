package youtube

import "strings"

// Snippet is one timed caption line.
type Snippet struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is one fetched caption track with its language metadata.
type Transcript struct {
	VideoID      string
	Language     string
	LanguageCode string
	IsGenerated  bool
	Snippets     []Snippet
}

// Text joins every snippet's text in chronological order, separated by a
// single space. Timing data is discarded.
func (t *Transcript) Text() string {
	parts := make([]string, len(t.Snippets))
	for i, s := range t.Snippets {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

// TrackInfo describes an available caption track without its content.
type TrackInfo struct {
	Language             string   `json:"language"`
	LanguageCode         string   `json:"language_code"`
	IsGenerated          bool     `json:"is_generated"`
	IsTranslatable       bool     `json:"is_translatable"`
	TranslationLanguages []string `json:"translation_languages"`
}

// selectTrack returns the first track whose language code appears in the
// preference list, in the caller's preference order — the first matching code
// wins, whatever kind of track carries it. Within one language code a
// manually authored track beats an auto-generated one.
func selectTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	for _, lang := range languages {
		for _, t := range tracks {
			if t.LanguageCode == lang && !t.isGenerated() {
				return t, true
			}
		}
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	return captionTrack{}, false
}
