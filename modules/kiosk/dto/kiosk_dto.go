package dto

import (
	"time"

	"github.com/google/uuid"
)

type PageRequest struct {
	TeacherID   uuid.UUID `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	StudentName string    `json:"studentName"`
	Location    string    `json:"location"`
	Reason      string    `json:"reason"`
	Urgency     string    `json:"urgency"`
}

type PageResponse struct {
	ID          uuid.UUID `json:"id"`
	TeacherID   uuid.UUID `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	StudentName string    `json:"studentName"`
	Location    string    `json:"location"`
	Reason      string    `json:"reason"`
	Urgency     string    `json:"urgency"`
	Status      string    `json:"status"`
	PagedAt     time.Time `json:"pagedAt"`
}

type CompletePageRequest struct {
	PageID uuid.UUID `json:"pageId"`
}

// QueueEntry is what lives in the redis queue and streams to dashboards
type QueueEntry struct {
	PageID      uuid.UUID `json:"pageId"`
	TeacherID   uuid.UUID `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	StudentName string    `json:"studentName"`
	Location    string    `json:"location"`
	Reason      string    `json:"reason"`
	Urgency     string    `json:"urgency"`
	PagedAt     time.Time `json:"pagedAt"`
}

type QueueResponse struct {
	Entries []QueueEntry `json:"entries"`
}

type RecentActivityResponse struct {
	Pages []PageResponse `json:"pages"`
}

type MetricsResponse struct {
	TotalCallsToday            int     `json:"totalCallsToday"`
	TotalCallsThisWeek         int     `json:"totalCallsThisWeek"`
	AverageResponseTimeMinutes float64 `json:"averageResponseTimeMinutes"`
}
