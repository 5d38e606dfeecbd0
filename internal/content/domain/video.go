package domain

import (
	"time"

	errprocess "course_content_service/pkg/err"
)

// Video leaf content unit. Duration is a directly editable value, not
// derived; the chapter and course aggregates are recomputed from it.
type Video struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Thumbnail   string    `bson:"thumbnail" json:"thumbnail"`
	VideoURL    string    `bson:"video_url" json:"video_url"`
	Duration    string    `bson:"duration" json:"duration"`
	ChapterID   string    `bson:"chapter_id" json:"chapter_id"`
	Order       int       `bson:"order" json:"order"`
	Views       int64     `bson:"views" json:"views"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateVideoReq usecase create video request
type CreateVideoReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	VideoURL    string `json:"video_url"`
	Duration    string `json:"duration"`
}

// Validate check required fields and length limits
func (r CreateVideoReq) Validate() error {
	if r.Title == "" {
		return errprocess.Validation("video title is required")
	}
	if len(r.Title) > maxNameLen {
		return errprocess.Validation("video title cannot exceed 100 characters")
	}
	if r.Description == "" {
		return errprocess.Validation("video description is required")
	}
	if len(r.Description) > maxDescriptionLen {
		return errprocess.Validation("video description cannot exceed 500 characters")
	}
	if r.VideoURL == "" {
		return errprocess.Validation("video URL is required")
	}
	return nil
}

// UpdateVideoReq usecase update video request. Empty strings keep the
// current value; Thumbnail is replaced whenever non-nil.
type UpdateVideoReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	VideoURL    string  `json:"video_url"`
	Duration    string  `json:"duration"`
	IsActive    *bool   `json:"is_active"`
}

// Validate check length limits on the provided fields
func (r UpdateVideoReq) Validate() error {
	if len(r.Title) > maxNameLen {
		return errprocess.Validation("video title cannot exceed 100 characters")
	}
	if len(r.Description) > maxDescriptionLen {
		return errprocess.Validation("video description cannot exceed 500 characters")
	}
	return nil
}
