package entity

// SlotKind tags a time slot as class or break time
type SlotKind string

const (
	SlotKindClass SlotKind = "class"
	SlotKindBreak SlotKind = "break"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays is the fixed day order used everywhere, including the wire format
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimeSlot is a contiguous interval within a day. Start and end are seconds
// elapsed since local midnight; a valid slot has StartTime < EndTime.
type TimeSlot struct {
	ID        string   `json:"id"`
	StartTime int      `json:"startTime"`
	EndTime   int      `json:"endTime"`
	Kind      SlotKind `json:"type"`
	Label     string   `json:"label,omitempty"`
}

// DaySchedule holds the slots of one weekday. Insertion order carries no
// meaning; reads that need determinism re-sort by start time.
type DaySchedule struct {
	Day   Weekday    `json:"day"`
	Slots []TimeSlot `json:"timeSlots"`
}

// WeeklySchedule always carries all seven days, empty days included.
// A day with no slots serializes as a day off.
type WeeklySchedule struct {
	Days [7]DaySchedule `json:"schedule"`
}

func NewWeeklySchedule() *WeeklySchedule {
	ws := &WeeklySchedule{}
	for i, d := range Weekdays {
		ws.Days[i] = DaySchedule{Day: d, Slots: []TimeSlot{}}
	}
	return ws
}

// Day returns the schedule for the named weekday, nil if the name is unknown
func (ws *WeeklySchedule) Day(day Weekday) *DaySchedule {
	for i := range ws.Days {
		if ws.Days[i].Day == day {
			return &ws.Days[i]
		}
	}
	return nil
}
