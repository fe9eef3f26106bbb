package twitchvod

import "fmt"

const (
	BroadcastHighlight = "highlight"
	BroadcastUpload    = "upload"
)

// URL builds the HLS manifest url for one of the video's resolutions. The label
// is not checked against Resolutions; see HasResolution.
func (v *VideoInfo) URL(resolution string) string {
	switch v.BroadcastType {
	case BroadcastHighlight:
		return fmt.Sprintf("https://%s/%s/%s/highlight-%s.m3u8",
			v.Domain, v.SpecialID, resolution, v.ID)
	case BroadcastUpload:
		return fmt.Sprintf("https://%s/%s/%s/%s/%s/index-dvr.m3u8",
			v.Domain, v.ChannelName, v.ID, v.SpecialID, resolution)
	default:
		return fmt.Sprintf("https://%s/%s/%s/index-dvr.m3u8",
			v.Domain, v.SpecialID, resolution)
	}
}

func (v *VideoInfo) HasResolution(label string) bool {
	_, ok := v.Resolutions[label]
	return ok
}

// Values flattens the video and its manifest url into the placeholder map used
// by command templates.
func (v *VideoInfo) Values(url string) map[string]string {
	return map[string]string{
		"url":            url,
		"title":          v.Title,
		"domain":         v.Domain,
		"special_id":     v.SpecialID,
		"id":             v.ID,
		"channel_name":   v.ChannelName,
		"broadcast_type": v.BroadcastType,
	}
}
