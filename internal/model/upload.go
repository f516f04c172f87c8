package model

import "time"

// Upload represents a stored image and the public URL it is served from.
type Upload struct {
	ID          string    `json:"_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
