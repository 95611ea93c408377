package entity

import (
	"database/sql"

	"enoki-admin/core/entity"

	"github.com/google/uuid"
)

// Page statuses walk pending → dispatched → completed, or expire when nobody
// responds in time.
const (
	StatusPending    = "pending"
	StatusDispatched = "dispatched"
	StatusCompleted  = "completed"
	StatusExpired    = "expired"
)

// Urgency levels accepted from the kiosk
const (
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

type Page struct {
	TeacherID uuid.UUID `db:"teacher_id"`

	// TeacherName is denormalized so the queue renders without joins
	TeacherName string `db:"teacher_name"`

	StudentName string `db:"student_name"`

	Location string `db:"location"`

	Reason string `db:"reason"`

	Urgency string `db:"urgency"`

	Status string `db:"status"`

	CompletedAt sql.NullTime `db:"completed_at"`

	entity.BaseEntity
}

type PaginatedPageEntity = entity.Pagination[Page]

// Metrics are the dashboard aggregates over the paging history
type Metrics struct {
	TotalCallsToday            int     `db:"total_calls_today"`
	TotalCallsThisWeek         int     `db:"total_calls_this_week"`
	AverageResponseTimeMinutes float64 `db:"average_response_time_minutes"`
}
