package domain

import (
	"time"

	errprocess "course_content_service/pkg/err"
)

// Chapter mid-level container inside a Course. CourseID is immutable
// after creation; Duration is always derived from the member videos.
type Chapter struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Duration    string    `bson:"duration" json:"duration"`
	CourseID    string    `bson:"course_id" json:"course_id"`
	Videos      []string  `bson:"videos" json:"videos"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateChapterReq usecase create chapter request
type CreateChapterReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate check required fields and length limits
func (r CreateChapterReq) Validate() error {
	if r.Name == "" {
		return errprocess.Validation("chapter name is required")
	}
	if len(r.Name) > maxNameLen {
		return errprocess.Validation("chapter name cannot exceed 100 characters")
	}
	if r.Description == "" {
		return errprocess.Validation("chapter description is required")
	}
	if len(r.Description) > maxDescriptionLen {
		return errprocess.Validation("chapter description cannot exceed 500 characters")
	}
	return nil
}

// UpdateChapterReq usecase update chapter request; empty fields keep
// the current value
type UpdateChapterReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate check length limits on the provided fields
func (r UpdateChapterReq) Validate() error {
	if len(r.Name) > maxNameLen {
		return errprocess.Validation("chapter name cannot exceed 100 characters")
	}
	if len(r.Description) > maxDescriptionLen {
		return errprocess.Validation("chapter description cannot exceed 500 characters")
	}
	return nil
}
