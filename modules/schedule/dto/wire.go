package dto

import (
	"encoding/json"
	"fmt"

	"enoki-admin/core/utils"
	"enoki-admin/modules/schedule/entity"
)

// Wire format exchanged with the persistence API: one entry per weekday in
// fixed order, day off or class/break intervals carrying raw second offsets.
// Slot ids and labels are intentionally dropped.

type WireClassTime struct {
	Start int `json:"cS"`
	End   int `json:"cE"`
}

type WireBreakTime struct {
	Start int `json:"bS"`
	End   int `json:"bE"`
}

type WireDay struct {
	DayOff     bool            `json:"dayOff"`
	ClassTimes []WireClassTime `json:"classTimes,omitempty"`
	BreakTimes []WireBreakTime `json:"breakTimes,omitempty"`
}

// DataFormatError is raised when an imported schedule payload does not have
// the expected shape. Callers surface the message instead of crashing.
type DataFormatError struct {
	Reason string
	Err    error
}

func (e *DataFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Data Feed Error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("Data Feed Error: %s", e.Reason)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// ToWireFormat serializes a weekly schedule. Empty days become {dayOff:true};
// other days partition their slots into class and break intervals.
func ToWireFormat(ws *entity.WeeklySchedule) []WireDay {
	out := make([]WireDay, 0, len(ws.Days))

	for _, ds := range ws.Days {
		if len(ds.Slots) == 0 {
			out = append(out, WireDay{DayOff: true})
			continue
		}

		day := WireDay{
			DayOff:     false,
			ClassTimes: []WireClassTime{},
			BreakTimes: []WireBreakTime{},
		}
		for _, slot := range ds.Slots {
			switch slot.Kind {
			case entity.SlotKindClass:
				day.ClassTimes = append(day.ClassTimes, WireClassTime{Start: slot.StartTime, End: slot.EndTime})
			case entity.SlotKindBreak:
				day.BreakTimes = append(day.BreakTimes, WireBreakTime{Start: slot.StartTime, End: slot.EndTime})
			}
		}
		out = append(out, day)
	}

	return out
}

// FromWireFormat rebuilds a weekly schedule from wire entries. The wire
// format carries no slot ids, so deterministic synthetic ids are assigned.
// Callers should run Validate on the result; imported data may itself be
// inconsistent.
func FromWireFormat(days []WireDay) (*entity.WeeklySchedule, error) {
	if len(days) != len(entity.Weekdays) {
		return nil, &DataFormatError{
			Reason: fmt.Sprintf("expected %d day entries, got %d", len(entity.Weekdays), len(days)),
		}
	}

	ws := entity.NewWeeklySchedule()
	for i, wireDay := range days {
		if wireDay.DayOff {
			continue
		}

		slots := []entity.TimeSlot{}
		for j, ct := range wireDay.ClassTimes {
			slots = append(slots, entity.TimeSlot{
				ID:        utils.GenerateSyntheticSlotID("class", i, j),
				StartTime: ct.Start,
				EndTime:   ct.End,
				Kind:      entity.SlotKindClass,
				Label:     fmt.Sprintf("Class %d", j+1),
			})
		}
		for j, bt := range wireDay.BreakTimes {
			slots = append(slots, entity.TimeSlot{
				ID:        utils.GenerateSyntheticSlotID("break", i, j),
				StartTime: bt.Start,
				EndTime:   bt.End,
				Kind:      entity.SlotKindBreak,
				Label:     fmt.Sprintf("Break %d", j+1),
			})
		}
		ws.Days[i].Slots = slots
	}

	return ws, nil
}

// FromWireJSON parses raw wire JSON. Malformed input (not an array, wrong
// element shape) fails with a DataFormatError carrying the original message.
func FromWireJSON(data []byte) (*entity.WeeklySchedule, error) {
	var days []WireDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, &DataFormatError{Reason: "Invalid data format", Err: err}
	}
	return FromWireFormat(days)
}
