package twitchvod

import "errors"

// Error classes. Call sites wrap these with fmt.Errorf("%w: ...") so callers can
// match with errors.Is while the message keeps its context.
var (
	ErrInvalidURL          = errors.New("invalid url")
	ErrNotTwitchURL        = errors.New("not a twitch url")
	ErrNotAVideoURL        = errors.New("not a video url")
	ErrFetchFailed         = errors.New("failed to fetch data")
	ErrInvalidResponseBody = errors.New("invalid response body")
	ErrInvalidResponseData = errors.New("invalid data received")
	ErrConfigParse         = errors.New("error in configuration file")
	ErrInvalidCommand      = errors.New("invalid command")
	ErrTemplateRender      = errors.New("template render failed")
	ErrExecutionFailed     = errors.New("execution failed")
	ErrPromptFailed        = errors.New("invalid resolution")
	ErrUnknownExecutor     = errors.New("unknown executor")
)
