package youtube

// Innertube /player wire types. The ANDROID client variant is used because it
// returns caption track metadata without a login or a PoToken.

const (
	androidClientVersion = "20.10.38"
	androidUserAgent     = "com.google.android.youtube/" + androidClientVersion + " (Linux; U; Android 11) gzip"
)

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client clientInfo `json:"client"`
}

type clientInfo struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResponse struct {
	Captions *struct {
		Renderer captionsRenderer `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionsRenderer struct {
	CaptionTracks        []captionTrack        `json:"captionTracks"`
	TranslationLanguages []translationLanguage `json:"translationLanguages"`
}

type captionTrack struct {
	BaseURL        string    `json:"baseUrl"`
	Name           trackName `json:"name"`
	LanguageCode   string    `json:"languageCode"`
	Kind           string    `json:"kind"` // "asr" marks auto-generated tracks
	IsTranslatable bool      `json:"isTranslatable"`
}

type translationLanguage struct {
	LanguageCode string    `json:"languageCode"`
	LanguageName trackName `json:"languageName"`
}

// trackName handles both name encodings YouTube uses (runs vs. simpleText).
type trackName struct {
	Runs []struct {
		Text string `json:"text"`
	} `json:"runs"`
	SimpleText string `json:"simpleText"`
}

func (n trackName) String() string {
	if n.SimpleText != "" {
		return n.SimpleText
	}
	s := ""
	for _, r := range n.Runs {
		s += r.Text
	}
	return s
}

// isGenerated reports whether the track was produced by automatic speech
// recognition rather than human authoring.
func (t captionTrack) isGenerated() bool { return t.Kind == "asr" }
