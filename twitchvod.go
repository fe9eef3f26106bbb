package twitchvod

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

const (
	CLIENT_ID     = "kimne78kx3ncx6brgo4mv6wki5h1ko"
	API_URL       = "https://api.twitch.tv/kraken"
	ACCEPT_HEADER = "application/vnd.twitchtv.v5+json"
)

var validate = validator.New()

// Client fetches video metadata. The zero value talks to the public API with
// http.DefaultClient.
type Client struct {
	HTTP     *http.Client
	BaseURL  string
	ClientID string
	Log      log.FieldLogger
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) logger() log.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	return log.StandardLogger()
}

func (c *Client) videoURL(id string) string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = API_URL
	}
	return base + "/videos/" + url.PathEscape(id)
}

// Fetch issues a single GET for the video and derives the CDN domain and
// special id from its animated preview url. There is no retry.
func (c *Client) Fetch(id string) (*VideoInfo, error) {
	clientID := c.ClientID
	if clientID == "" {
		clientID = CLIENT_ID
	}

	u := c.videoURL(id)
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Client-Id", clientID)
	req.Header.Set("Accept", ACCEPT_HEADER)

	c.logger().Debugf("GET %s", u)
	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 16*1024))
		return nil, fmt.Errorf("%w: unexpected status %s: %s", ErrFetchFailed, res.Status, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponseBody, err)
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not utf-8 text", ErrInvalidResponseBody)
	}

	var raw rawVideoInfo
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponseData, err)
	}
	return fromRaw(raw, id)
}

func fromRaw(raw rawVideoInfo, id string) (*VideoInfo, error) {
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponseData, err)
	}

	preview, err := url.Parse(*raw.AnimatedPreviewURL)
	if err != nil {
		return nil, fmt.Errorf("%w: preview url: %v", ErrInvalidResponseData, err)
	}

	domain := preview.Hostname()
	if domain == "" || net.ParseIP(domain) != nil {
		return nil, fmt.Errorf("%w: preview url %q has no domain", ErrInvalidResponseData, *raw.AnimatedPreviewURL)
	}

	specialID, ok := SpecialID(preview.EscapedPath())
	if !ok {
		return nil, fmt.Errorf("%w: no special id in preview url %q", ErrInvalidResponseData, *raw.AnimatedPreviewURL)
	}

	return &VideoInfo{
		Title:         *raw.Title,
		Domain:        domain,
		SpecialID:     specialID,
		ID:            id,
		ChannelName:   *raw.Channel.Name,
		Resolutions:   raw.Resolutions,
		BroadcastType: *raw.BroadcastType,
	}, nil
}

// SpecialID returns the last path segment before the first one containing
// "storyboards".
func SpecialID(path string) (string, bool) {
	var last string
	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if strings.Contains(seg, "storyboards") {
			break
		}
		last = seg
	}
	return last, last != ""
}
