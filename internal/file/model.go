// File: internal/file/model.go
package file

import (
	"fmt"

	"cadastro_backend/internal/common"

	"github.com/google/uuid"
)

// File represents a stored upload. Users reference it through a nullable
// avatar foreign key; this subsystem owns the record and the bytes on disk.
type File struct {
	common.BaseModel
	Name string `gorm:"type:varchar(255);not null"`        // original client filename
	Path string `gorm:"type:varchar(255);not null;unique"` // stored filename, unique per upload
}

// TableName specifies the table name for the File model.
func (File) TableName() string {
	return "files"
}

// Response is the wire representation of a file. The public URL is derived
// from configuration, never stored.
type Response struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Path string    `json:"path"`
	URL  string    `json:"url"`
}

// ToResponse converts a File model to its wire representation.
func ToResponse(f *File, baseURL string) *Response {
	if f == nil {
		return nil
	}
	return &Response{
		ID:   f.ID,
		Name: f.Name,
		Path: f.Path,
		URL:  fmt.Sprintf("%s/files/%s", baseURL, f.Path),
	}
}

// AvatarResponse is the trimmed reference embedded in user payloads:
// identifier, storage path and public URL only.
type AvatarResponse struct {
	ID   uuid.UUID `json:"id"`
	Path string    `json:"path"`
	URL  string    `json:"url"`
}

// ToAvatarResponse converts a File model to the trimmed avatar reference.
func ToAvatarResponse(f *File, baseURL string) *AvatarResponse {
	if f == nil {
		return nil
	}
	return &AvatarResponse{
		ID:   f.ID,
		Path: f.Path,
		URL:  fmt.Sprintf("%s/files/%s", baseURL, f.Path),
	}
}
