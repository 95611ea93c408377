package dto

import (
	"errors"
	"testing"

	"enoki-admin/modules/schedule/entity"
)

func TestToWireFormat_EmptyScheduleIsAllDaysOff(t *testing.T) {
	ws := entity.NewWeeklySchedule()

	wire := ToWireFormat(ws)
	if len(wire) != 7 {
		t.Fatalf("expected 7 day entries, got %d", len(wire))
	}
	for i, day := range wire {
		if !day.DayOff {
			t.Errorf("day %d: expected dayOff", i)
		}
		if day.ClassTimes != nil || day.BreakTimes != nil {
			t.Errorf("day %d: day off must not carry time arrays", i)
		}
	}
}

func TestToWireFormat_PartitionsByKind(t *testing.T) {
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{
		{ID: "x", StartTime: 8 * 3600, EndTime: 9 * 3600, Kind: entity.SlotKindClass, Label: "dropped"},
		{ID: "y", StartTime: 9 * 3600, EndTime: 9*3600 + 900, Kind: entity.SlotKindBreak},
	}

	wire := ToWireFormat(ws)
	monday := wire[0]
	if monday.DayOff {
		t.Fatal("expected working day")
	}
	if len(monday.ClassTimes) != 1 || len(monday.BreakTimes) != 1 {
		t.Fatalf("expected 1 class and 1 break interval, got %+v", monday)
	}
	if monday.ClassTimes[0].Start != 8*3600 || monday.ClassTimes[0].End != 9*3600 {
		t.Errorf("class interval mismatch: %+v", monday.ClassTimes[0])
	}
	if monday.BreakTimes[0].Start != 9*3600 || monday.BreakTimes[0].End != 9*3600+900 {
		t.Errorf("break interval mismatch: %+v", monday.BreakTimes[0])
	}
}

func TestRoundTrip_PreservesDayKindStartEnd(t *testing.T) {
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{
		{ID: "a", StartTime: 8 * 3600, EndTime: 9 * 3600, Kind: entity.SlotKindClass, Label: "Math"},
		{ID: "b", StartTime: 10 * 3600, EndTime: 10*3600 + 1800, Kind: entity.SlotKindBreak},
	}
	ws.Day(entity.Friday).Slots = []entity.TimeSlot{
		{ID: "c", StartTime: 13 * 3600, EndTime: 15 * 3600, Kind: entity.SlotKindClass},
	}

	restored, err := FromWireFormat(ToWireFormat(ws))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	type tuple struct {
		day        entity.Weekday
		kind       entity.SlotKind
		start, end int
	}
	collect := func(s *entity.WeeklySchedule) map[tuple]int {
		out := map[tuple]int{}
		for _, ds := range s.Days {
			for _, slot := range ds.Slots {
				out[tuple{ds.Day, slot.Kind, slot.StartTime, slot.EndTime}]++
			}
		}
		return out
	}

	want := collect(ws)
	got := collect(restored)
	if len(want) != len(got) {
		t.Fatalf("tuple sets differ: want %v, got %v", want, got)
	}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("tuple %+v: want %d, got %d", k, n, got[k])
		}
	}
}

func TestFromWireFormat_DayOffYieldsNoSlots(t *testing.T) {
	days := make([]WireDay, 7)
	for i := range days {
		days[i] = WireDay{DayOff: true}
	}

	ws, err := FromWireFormat(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ds := range ws.Days {
		if len(ds.Slots) != 0 {
			t.Errorf("%s: expected no slots, got %d", ds.Day, len(ds.Slots))
		}
	}
}

func TestFromWireFormat_AssignsSyntheticIDsAndLabels(t *testing.T) {
	days := make([]WireDay, 7)
	for i := range days {
		days[i] = WireDay{DayOff: true}
	}
	days[1] = WireDay{
		DayOff:     false,
		ClassTimes: []WireClassTime{{Start: 8 * 3600, End: 9 * 3600}, {Start: 9 * 3600, End: 10 * 3600}},
		BreakTimes: []WireBreakTime{{Start: 10 * 3600, End: 10*3600 + 1800}},
	}

	ws, err := FromWireFormat(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots := ws.Day(entity.Tuesday).Slots
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	if slots[0].ID != "class-1-0" || slots[1].ID != "class-1-1" || slots[2].ID != "break-1-0" {
		t.Errorf("synthetic ids wrong: %q %q %q", slots[0].ID, slots[1].ID, slots[2].ID)
	}
	if slots[0].Label != "Class 1" || slots[2].Label != "Break 1" {
		t.Errorf("labels wrong: %q %q", slots[0].Label, slots[2].Label)
	}
}

func TestFromWireFormat_WrongLengthFails(t *testing.T) {
	_, err := FromWireFormat([]WireDay{{DayOff: true}})

	var dfe *DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("expected DataFormatError, got %v", err)
	}
}

func TestFromWireJSON_MalformedInputFails(t *testing.T) {
	cases := [][]byte{
		[]byte(`{"not":"an array"}`),
		[]byte(`"nope"`),
		[]byte(`[{"dayOff":false,"classTimes":"bad shape"}]`),
		[]byte(`garbage`),
	}

	for _, raw := range cases {
		_, err := FromWireJSON(raw)
		var dfe *DataFormatError
		if !errors.As(err, &dfe) {
			t.Errorf("input %s: expected DataFormatError, got %v", raw, err)
		}
	}
}

func TestFromWireJSON_ValidPayload(t *testing.T) {
	raw := []byte(`[
		{"dayOff":false,"classTimes":[{"cS":28800,"cE":32400}],"breakTimes":[]},
		{"dayOff":true},{"dayOff":true},{"dayOff":true},
		{"dayOff":true},{"dayOff":true},{"dayOff":true}
	]`)

	ws, err := FromWireJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slots := ws.Day(entity.Monday).Slots
	if len(slots) != 1 || slots[0].StartTime != 28800 || slots[0].EndTime != 32400 {
		t.Errorf("unexpected monday slots: %+v", slots)
	}
}
