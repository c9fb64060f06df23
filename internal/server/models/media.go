package models

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is an attachment of an entry. The binary lives in object storage
// under StorageKey.
type Media struct {
	ID         string
	EntryID    string
	Kind       MediaKind
	StorageKey string
}

// MediaLink is a temporary download link handed to a viewer.
type MediaLink struct {
	MediaID string
	Kind    MediaKind
	URL     string
}

type MediaCounts struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
}
