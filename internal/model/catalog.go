package model

import "time"

// CatalogUpload is a custom weights CSV stored for later analyses
type CatalogUpload struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	CSV        string    `json:"-" bson:"csv"`
	Programs   int       `json:"programs" bson:"programs"`
	UploadedBy string    `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
