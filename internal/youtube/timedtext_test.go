package youtube

import "testing"

var sampleTimedtext = []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">hello &amp; welcome</text>
  <text start="2.5" dur="1.25"><i>hello</i></text>
  <text start="3.75" dur="2">  </text>
  <text start="5.75" dur="0.5">bye</text>
</transcript>`)

func TestParseTimedtext(t *testing.T) {
	t.Run("strip_formatting", func(t *testing.T) {
		snippets, err := parseTimedtext(sampleTimedtext, false)
		if err != nil {
			t.Fatalf("parseTimedtext: %v", err)
		}
		// blank line dropped
		if len(snippets) != 3 {
			t.Fatalf("got %d snippets, want 3", len(snippets))
		}
		if snippets[1].Text != "hello" {
			t.Errorf("markup not stripped: %q", snippets[1].Text)
		}
		if snippets[0].Start != 0 || snippets[0].Duration != 2.5 {
			t.Errorf("timing not preserved: start=%v dur=%v", snippets[0].Start, snippets[0].Duration)
		}
		if snippets[1].Start != 2.5 || snippets[1].Duration != 1.25 {
			t.Errorf("timing not preserved: start=%v dur=%v", snippets[1].Start, snippets[1].Duration)
		}
	})

	t.Run("preserve_formatting", func(t *testing.T) {
		snippets, err := parseTimedtext(sampleTimedtext, true)
		if err != nil {
			t.Fatalf("parseTimedtext: %v", err)
		}
		if snippets[1].Text != "<i>hello</i>" {
			t.Errorf("markup not preserved: %q", snippets[1].Text)
		}
	})

	t.Run("entities_unescaped", func(t *testing.T) {
		snippets, err := parseTimedtext(sampleTimedtext, false)
		if err != nil {
			t.Fatalf("parseTimedtext: %v", err)
		}
		if snippets[0].Text != "hello & welcome" {
			t.Errorf("entities not unescaped: %q", snippets[0].Text)
		}
	})

	t.Run("invalid_xml", func(t *testing.T) {
		if _, err := parseTimedtext([]byte("<transcript><text"), false); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestTranscriptText(t *testing.T) {
	tr := &Transcript{Snippets: []Snippet{
		{Text: "hello", Start: 0, Duration: 1},
		{Text: "world", Start: 1, Duration: 1},
		{Text: "again", Start: 2, Duration: 1},
	}}

	want := "hello world again"
	if got := tr.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	// shaping is idempotent
	if got := tr.Text(); got != want {
		t.Errorf("second Text() = %q, want %q", got, want)
	}

	empty := &Transcript{}
	if got := empty.Text(); got != "" {
		t.Errorf("empty Text() = %q, want empty string", got)
	}
}

func TestSelectTrack(t *testing.T) {
	tracks := []captionTrack{
		{LanguageCode: "en", Kind: "asr"},
		{LanguageCode: "en"},
		{LanguageCode: "ja"},
	}

	tests := []struct {
		name      string
		languages []string
		wantCode  string
		wantASR   bool
		wantOK    bool
	}{
		{"first_preference_available", []string{"ja", "en"}, "ja", false, true},
		{"falls_through_to_second_preference", []string{"ko", "en"}, "en", false, true},
		{"manual_beats_generated", []string{"en"}, "en", false, true},
		{"no_match", []string{"de", "fr"}, "", false, false},
		{"empty_preferences", nil, "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := selectTrack(tracks, tt.languages)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.LanguageCode != tt.wantCode {
				t.Errorf("LanguageCode = %q, want %q", got.LanguageCode, tt.wantCode)
			}
			if got.isGenerated() != tt.wantASR {
				t.Errorf("isGenerated = %v, want %v", got.isGenerated(), tt.wantASR)
			}
		})
	}

	t.Run("first_preference_generated_beats_later_manual", func(t *testing.T) {
		mixed := []captionTrack{
			{LanguageCode: "en"},
			{LanguageCode: "ko", Kind: "asr"},
		}
		got, ok := selectTrack(mixed, []string{"ko", "en"})
		if !ok {
			t.Fatal("no track selected")
		}
		if got.LanguageCode != "ko" || !got.isGenerated() {
			t.Errorf("got %s generated=%v, want generated ko", got.LanguageCode, got.isGenerated())
		}
	})

	t.Run("generated_only_track_still_selected", func(t *testing.T) {
		asrOnly := []captionTrack{{LanguageCode: "en", Kind: "asr"}}
		got, ok := selectTrack(asrOnly, []string{"en"})
		if !ok || !got.isGenerated() {
			t.Errorf("expected generated en track, got %+v ok=%v", got, ok)
		}
	})
}
