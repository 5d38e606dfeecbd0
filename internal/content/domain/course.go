package domain

import (
	"time"

	errprocess "course_content_service/pkg/err"
)

// CourseStatus definition course publish status
type CourseStatus string

const (
	// CourseDraft course is not visible to students yet
	CourseDraft CourseStatus = "draft"
	// CoursePublished course is visible to enrolled students
	CoursePublished CourseStatus = "published"
)

const (
	maxNameLen              = 100
	maxCourseDescriptionLen = 1000
	maxDescriptionLen       = 500
)

// ZeroClock default duration value for fresh entities
const ZeroClock = "00:00"

// Course top-level content container. Chapters holds the owned chapter
// ids in insertion order; TotalDuration is always derived from them.
type Course struct {
	ID               string       `bson:"_id,omitempty" json:"id"`
	Name             string       `bson:"name" json:"name"`
	Description      string       `bson:"description" json:"description"`
	Thumbnail        string       `bson:"thumbnail" json:"thumbnail"`
	Status           CourseStatus `bson:"status" json:"status"`
	CreatedBy        string       `bson:"created_by" json:"created_by"`
	Chapters         []string     `bson:"chapters" json:"chapters"`
	TotalDuration    string       `bson:"total_duration" json:"total_duration"`
	EnrolledStudents []string     `bson:"enrolled_students" json:"enrolled_students"`
	CreatedAt        time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `bson:"updated_at" json:"updated_at"`
}

// CreateCourseReq usecase create course request
type CreateCourseReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

// Validate check required fields and length limits
func (r CreateCourseReq) Validate() error {
	if r.Name == "" {
		return errprocess.Validation("course name is required")
	}
	if len(r.Name) > maxNameLen {
		return errprocess.Validation("course name cannot exceed 100 characters")
	}
	if r.Description == "" {
		return errprocess.Validation("course description is required")
	}
	if len(r.Description) > maxCourseDescriptionLen {
		return errprocess.Validation("course description cannot exceed 1000 characters")
	}
	return nil
}

// UpdateCourseReq usecase update course request. Empty Name/Description
// keep the current value; Thumbnail is replaced whenever non-nil so it
// can be cleared with an empty string.
type UpdateCourseReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
}

// Validate check length limits on the provided fields
func (r UpdateCourseReq) Validate() error {
	if len(r.Name) > maxNameLen {
		return errprocess.Validation("course name cannot exceed 100 characters")
	}
	if len(r.Description) > maxCourseDescriptionLen {
		return errprocess.Validation("course description cannot exceed 1000 characters")
	}
	return nil
}

// CourseQuery list filter plus pagination
type CourseQuery struct {
	CreatedBy *string
	Status    *CourseStatus
	Page      int64
	Limit     int64
}

// CourseListRes usecase list courses response
type CourseListRes struct {
	Courses []Course `json:"courses"`
	Page    int64    `json:"page"`
	Limit   int64    `json:"limit"`
	Total   int64    `json:"total"`
	Pages   int64    `json:"pages"`
}

// ChapterDetail chapter with its videos populated, sorted by order
type ChapterDetail struct {
	Chapter Chapter `json:"chapter"`
	Videos  []Video `json:"videos"`
}

// CourseDetail course with chapters and videos populated
type CourseDetail struct {
	Course   Course          `json:"course"`
	Chapters []ChapterDetail `json:"chapters"`
}
