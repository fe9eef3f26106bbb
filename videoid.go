package twitchvod

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const twitchDomain = "twitch.tv"

// VideoID validates that raw points at a twitch VOD page
// (https://www.twitch.tv/videos/123456789) and returns the numeric id as written.
func VideoID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("%w: %q has no scheme", ErrInvalidURL, raw)
	}

	if !isTwitch(u.Host) {
		return "", fmt.Errorf("%w: %q", ErrNotTwitchURL, u.Host)
	}

	id, ok := extractVideoID(u.EscapedPath())
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotAVideoURL, raw)
	}
	return id, nil
}

func isTwitch(hostport string) bool {
	h := normalizeHost(hostport)
	h = strings.TrimPrefix(h, "www.")
	return h == twitchDomain
}

// extractVideoID expects exactly two segments: "videos" and an unsigned integer.
func extractVideoID(path string) (string, bool) {
	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segs) != 2 || segs[0] != "videos" {
		return "", false
	}
	if _, err := strconv.ParseUint(segs[1], 10, 64); err != nil {
		return "", false
	}
	return segs[1], true
}

func normalizeHost(hostport string) string {
	h := strings.TrimSpace(strings.ToLower(hostport))
	if h == "" {
		return ""
	}
	// url.URL.Host may include port.
	if strings.Contains(h, ":") {
		if parsed, err := url.Parse("//" + h); err == nil && parsed.Hostname() != "" {
			h = parsed.Hostname()
		}
	}
	return strings.TrimSuffix(h, ".")
}
