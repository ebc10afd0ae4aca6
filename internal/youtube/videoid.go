package youtube

import "regexp"

// Recognized URL shapes, in priority order. The ID capture is restricted to
// the character set YouTube uses for video IDs; anything left over after the
// ID must be additional query parameters or a fragment, otherwise the shape
// does not match.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(?:www\.|m\.)?youtube\.com/watch\?(?:.*&)?v=([A-Za-z0-9_-]+)(?:[&#].*)?$`),
	regexp.MustCompile(`^https?://youtu\.be/([A-Za-z0-9_-]+)(?:[?#].*)?$`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/embed/([A-Za-z0-9_-]+)(?:[?#].*)?$`),
}

var bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ExtractVideoID normalizes a YouTube URL or raw video ID to the video ID.
// Pure string parsing, no network access. Unrecognized URL shapes and tokens
// outside the ID character set fail with *InvalidInputError.
func ExtractVideoID(urlOrID string) (string, error) {
	for _, re := range urlPatterns {
		if m := re.FindStringSubmatch(urlOrID); m != nil {
			return m[1], nil
		}
	}
	if bareIDPattern.MatchString(urlOrID) {
		return urlOrID, nil
	}
	return "", &InvalidInputError{Input: urlOrID}
}
