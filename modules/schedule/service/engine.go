package service

import (
	"fmt"
	"sort"
	"time"

	"enoki-admin/core/constants"
	"enoki-admin/core/utils"
	"enoki-admin/modules/schedule/entity"
)

const (
	defaultStartHour  = 8
	addSlotGapMinutes = 30
	defaultSlotHours  = 1
	secondsPerHour    = 3600
	secondsPerMinute  = 60
)

// Engine maintains an editable weekly schedule and enforces the valid-schedule
// invariant. All operations are synchronous and touch nothing but the schedule
// value they are given.
type Engine struct {
	// displayLoc is the fixed offset used to render slot times. Anchored to
	// one zone per deployment so every device shows the same clock times.
	displayLoc *time.Location
}

func NewEngine(displayUTCOffsetHours int) *Engine {
	name := fmt.Sprintf("UTC%+d", displayUTCOffsetHours)
	return &Engine{
		displayLoc: time.FixedZone(name, displayUTCOffsetHours*secondsPerHour),
	}
}

func NewDefaultEngine() *Engine {
	return NewEngine(constants.DefaultDisplayUTCOffset)
}

// CreateSlot converts hour/minute pairs to second offsets and assigns a fresh
// id. No validation happens here; Validate is a separate explicit pass.
func (e *Engine) CreateSlot(startHour, startMinute, endHour, endMinute int, kind entity.SlotKind, label string) entity.TimeSlot {
	return entity.TimeSlot{
		ID:        utils.GenerateID(),
		StartTime: startHour*secondsPerHour + startMinute*secondsPerMinute,
		EndTime:   endHour*secondsPerHour + endMinute*secondsPerMinute,
		Kind:      kind,
		Label:     label,
	}
}

// AddSlot appends a one-hour slot to the day, placed 30 minutes after the
// day's latest end time, or 08:00-09:00 when the day is empty. Minute overflow
// carries into the hour rather than clamping.
func (e *Engine) AddSlot(ws *entity.WeeklySchedule, day entity.Weekday, kind entity.SlotKind) *entity.TimeSlot {
	ds := ws.Day(day)
	if ds == nil {
		return nil
	}

	startHour := defaultStartHour
	startMinute := 0

	if len(ds.Slots) > 0 {
		latestEnd := ds.Slots[0].EndTime
		for _, slot := range ds.Slots[1:] {
			if slot.EndTime > latestEnd {
				latestEnd = slot.EndTime
			}
		}

		startHour = latestEnd / secondsPerHour
		startMinute = (latestEnd % secondsPerHour) / secondsPerMinute
		startMinute += addSlotGapMinutes

		if startMinute >= 60 {
			startHour += startMinute / 60
			startMinute = startMinute % 60
		}
	}

	label := "Class"
	if kind == entity.SlotKindBreak {
		label = "Break"
	}

	slot := e.CreateSlot(startHour, startMinute, startHour+defaultSlotHours, startMinute, kind, label)
	ds.Slots = append(ds.Slots, slot)
	return &ds.Slots[len(ds.Slots)-1]
}

// RemoveSlot deletes the slot with the given id from the day; no-op if absent
func (e *Engine) RemoveSlot(ws *entity.WeeklySchedule, day entity.Weekday, slotID string) {
	ds := ws.Day(day)
	if ds == nil {
		return
	}
	kept := ds.Slots[:0]
	for _, slot := range ds.Slots {
		if slot.ID != slotID {
			kept = append(kept, slot)
		}
	}
	ds.Slots = kept
}

// SlotUpdate carries the fields UpdateSlot merges into an existing slot.
// Nil fields are left untouched.
type SlotUpdate struct {
	StartTime *int
	EndTime   *int
	Kind      *entity.SlotKind
	Label     *string
}

// UpdateSlot merges the given fields into the matching slot; no-op when the
// id is not found. Callers re-run Validate afterwards.
func (e *Engine) UpdateSlot(ws *entity.WeeklySchedule, day entity.Weekday, slotID string, updates SlotUpdate) {
	ds := ws.Day(day)
	if ds == nil {
		return
	}
	for i := range ds.Slots {
		if ds.Slots[i].ID != slotID {
			continue
		}
		if updates.StartTime != nil {
			ds.Slots[i].StartTime = *updates.StartTime
		}
		if updates.EndTime != nil {
			ds.Slots[i].EndTime = *updates.EndTime
		}
		if updates.Kind != nil {
			ds.Slots[i].Kind = *updates.Kind
		}
		if updates.Label != nil {
			ds.Slots[i].Label = *updates.Label
		}
		return
	}
}

// collides reports half-open interval overlap between two slots
func collides(a, b entity.TimeSlot) bool {
	return a.StartTime < b.EndTime && a.EndTime > b.StartTime
}

// Validate checks every day independently: inverted slots (start >= end) and
// pairwise collisions. Each unordered pair is reported once, since overlaps
// are only tested against later slots in sorted order. O(n^2) per day, fine
// for single-digit slot counts.
func (e *Engine) Validate(ws *entity.WeeklySchedule) []string {
	var errs []string

	for _, ds := range ws.Days {
		sorted := make([]entity.TimeSlot, len(ds.Slots))
		copy(sorted, ds.Slots)
		// Ties on start time break by id so repeated calls are deterministic
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].StartTime != sorted[j].StartTime {
				return sorted[i].StartTime < sorted[j].StartTime
			}
			return sorted[i].ID < sorted[j].ID
		})

		for i := 0; i < len(sorted); i++ {
			current := sorted[i]

			if current.StartTime >= current.EndTime {
				errs = append(errs, fmt.Sprintf(
					"%s: Invalid time slot - start time must be before end time", ds.Day))
			}

			for j := i + 1; j < len(sorted); j++ {
				next := sorted[j]
				if collides(current, next) {
					errs = append(errs, fmt.Sprintf(
						"%s: Time slot collision detected between %s-%s and %s-%s",
						ds.Day,
						e.FormatTime(current.StartTime), e.FormatTime(current.EndTime),
						e.FormatTime(next.StartTime), e.FormatTime(next.EndTime)))
				}
			}
		}
	}

	return errs
}

// FormatTime renders seconds-from-midnight as a 12-hour clock time in the
// engine's fixed display zone.
func (e *Engine) FormatTime(secondsFromMidnight int) string {
	hours := secondsFromMidnight / secondsPerHour
	minutes := (secondsFromMidnight % secondsPerHour) / secondsPerMinute

	t := time.Date(2000, time.January, 1, 0, 0, 0, 0, e.displayLoc).
		Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
	return t.Format("3:04 PM")
}
