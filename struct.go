package twitchvod

type rawChannel struct {
	Name *string `json:"name" validate:"required"`
}

// rawVideoInfo is the kraken v5 video document. Every field is required.
type rawVideoInfo struct {
	Title              *string           `json:"title" validate:"required"`
	AnimatedPreviewURL *string           `json:"animated_preview_url" validate:"required"`
	Channel            *rawChannel       `json:"channel" validate:"required"`
	Resolutions        map[string]string `json:"resolutions" validate:"required"`
	BroadcastType      *string           `json:"broadcast_type" validate:"required"`
}

type VideoInfo struct {
	Title         string
	Domain        string
	SpecialID     string
	ID            string
	ChannelName   string
	Resolutions   map[string]string
	BroadcastType string
}
