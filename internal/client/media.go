package client

import (
	"net/url"
	"path"
	"strings"
)

const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeAudio    = "audio"
	MediaTypeDocument = "document"
)

var mediaTypesByExt = map[string]string{
	"jpg":  MediaTypeImage,
	"jpeg": MediaTypeImage,
	"png":  MediaTypeImage,
	"gif":  MediaTypeImage,
	"webp": MediaTypeImage,
	"mp4":  MediaTypeVideo,
	"webm": MediaTypeVideo,
	"3gp":  MediaTypeVideo,
	"mp3":  MediaTypeAudio,
	"wav":  MediaTypeAudio,
	"ogg":  MediaTypeAudio,
	"m4a":  MediaTypeAudio,
	"aac":  MediaTypeAudio,
}

// MediaType infers the Cloud API media type from the file extension of
// mediaURL. Unknown or missing extensions are sent as documents.
func MediaType(mediaURL string) string {
	p := mediaURL
	if u, err := url.Parse(mediaURL); err == nil {
		p = u.Path
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if t, ok := mediaTypesByExt[ext]; ok {
		return t
	}
	return MediaTypeDocument
}
