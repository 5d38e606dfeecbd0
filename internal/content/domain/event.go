package domain

import "time"

// EventAction what happened to the entity
type EventAction string

const (
	// EventCreated entity was created
	EventCreated EventAction = "created"
	// EventUpdated entity was updated
	EventUpdated EventAction = "updated"
	// EventDeleted entity was deleted, cascades included
	EventDeleted EventAction = "deleted"
)

// EventEntity which entity kind the event concerns
type EventEntity string

const (
	// EntityCourse course record
	EntityCourse EventEntity = "course"
	// EntityChapter chapter record
	EntityChapter EventEntity = "chapter"
	// EntityVideo video record
	EntityVideo EventEntity = "video"
)

// ContentEvent change notification published after a successful
// mutation. Publishing is fire-and-forget: a publish failure is logged
// and never fails the mutation that produced it.
type ContentEvent struct {
	Action     EventAction `json:"action"`
	Entity     EventEntity `json:"entity"`
	EntityID   string      `json:"entity_id"`
	CourseID   string      `json:"course_id"`
	OccurredAt time.Time   `json:"occurred_at"`
}
