package service

import (
	"strings"
	"testing"

	"enoki-admin/modules/schedule/entity"
)

func newTestEngine() *Engine {
	return NewEngine(8)
}

func slotAt(id string, startH, startM, endH, endM int, kind entity.SlotKind) entity.TimeSlot {
	return entity.TimeSlot{
		ID:        id,
		StartTime: startH*3600 + startM*60,
		EndTime:   endH*3600 + endM*60,
		Kind:      kind,
	}
}

// ── CreateSlot ──

func TestCreateSlot_ConvertsToSecondOffsets(t *testing.T) {
	e := newTestEngine()

	slot := e.CreateSlot(9, 30, 10, 45, entity.SlotKindClass, "Algebra")
	if slot.StartTime != 9*3600+30*60 {
		t.Errorf("expected start %d, got %d", 9*3600+30*60, slot.StartTime)
	}
	if slot.EndTime != 10*3600+45*60 {
		t.Errorf("expected end %d, got %d", 10*3600+45*60, slot.EndTime)
	}
	if slot.ID == "" {
		t.Error("expected a generated slot id")
	}
	if slot.Label != "Algebra" {
		t.Errorf("expected label to be kept, got %q", slot.Label)
	}
}

func TestCreateSlot_AssignsUniqueIDs(t *testing.T) {
	e := newTestEngine()

	a := e.CreateSlot(8, 0, 9, 0, entity.SlotKindClass, "")
	b := e.CreateSlot(8, 0, 9, 0, entity.SlotKindClass, "")
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, both were %q", a.ID)
	}
}

// ── AddSlot ──

func TestAddSlot_EmptyDayDefaultsToEightAM(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()

	slot := e.AddSlot(ws, entity.Monday, entity.SlotKindClass)
	if slot == nil {
		t.Fatal("expected a slot")
	}
	if slot.StartTime != 8*3600 {
		t.Errorf("expected 08:00 start, got %d", slot.StartTime)
	}
	if slot.EndTime != 9*3600 {
		t.Errorf("expected 09:00 end, got %d", slot.EndTime)
	}
	if len(ws.Day(entity.Monday).Slots) != 1 {
		t.Errorf("expected slot appended to monday")
	}
}

func TestAddSlot_SequencesAfterLatestEnd(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{
		slotAt("a", 9, 0, 10, 0, entity.SlotKindClass),
	}

	slot := e.AddSlot(ws, entity.Monday, entity.SlotKindBreak)
	if slot == nil {
		t.Fatal("expected a slot")
	}
	// 30-minute gap after 10:00, one hour long
	if slot.StartTime != 10*3600+30*60 {
		t.Errorf("expected 10:30 start, got %d", slot.StartTime)
	}
	if slot.EndTime != 11*3600+30*60 {
		t.Errorf("expected 11:30 end, got %d", slot.EndTime)
	}
	if slot.Kind != entity.SlotKindBreak {
		t.Errorf("expected break slot, got %s", slot.Kind)
	}
	if slot.Label != "Break" {
		t.Errorf("expected default label Break, got %q", slot.Label)
	}
}

func TestAddSlot_MinuteOverflowCarriesIntoHour(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Friday).Slots = []entity.TimeSlot{
		slotAt("a", 22, 45, 23, 45, entity.SlotKindClass),
	}

	slot := e.AddSlot(ws, entity.Friday, entity.SlotKindClass)
	if slot == nil {
		t.Fatal("expected a slot")
	}
	// 45 + 30 = 75 minutes carries: start hour 23+1=24, minute 15
	if slot.StartTime != 24*3600+15*60 {
		t.Errorf("expected carried start of 24h15m, got %d", slot.StartTime)
	}
	if slot.EndTime != 25*3600+15*60 {
		t.Errorf("expected end one hour later, got %d", slot.EndTime)
	}
}

func TestAddSlot_UnknownDayIsNoop(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()

	if slot := e.AddSlot(ws, entity.Weekday("funday"), entity.SlotKindClass); slot != nil {
		t.Errorf("expected nil for unknown day, got %+v", slot)
	}
}

// ── RemoveSlot / UpdateSlot ──

func TestRemoveSlot(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Tuesday).Slots = []entity.TimeSlot{
		slotAt("a", 9, 0, 10, 0, entity.SlotKindClass),
		slotAt("b", 10, 0, 11, 0, entity.SlotKindBreak),
	}

	e.RemoveSlot(ws, entity.Tuesday, "a")
	slots := ws.Day(entity.Tuesday).Slots
	if len(slots) != 1 || slots[0].ID != "b" {
		t.Errorf("expected only slot b to remain, got %+v", slots)
	}

	// removing an absent id is a no-op
	e.RemoveSlot(ws, entity.Tuesday, "nope")
	if len(ws.Day(entity.Tuesday).Slots) != 1 {
		t.Error("expected no-op for missing slot id")
	}
}

func TestUpdateSlot_MergesGivenFieldsOnly(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{
		slotAt("a", 9, 0, 10, 0, entity.SlotKindClass),
	}

	newStart := 11 * 3600
	label := "Homeroom"
	e.UpdateSlot(ws, entity.Monday, "a", SlotUpdate{StartTime: &newStart, Label: &label})

	slot := ws.Day(entity.Monday).Slots[0]
	if slot.StartTime != newStart {
		t.Errorf("expected start updated to %d, got %d", newStart, slot.StartTime)
	}
	if slot.EndTime != 10*3600 {
		t.Errorf("expected end untouched, got %d", slot.EndTime)
	}
	if slot.Label != "Homeroom" {
		t.Errorf("expected label updated, got %q", slot.Label)
	}
	if slot.Kind != entity.SlotKindClass {
		t.Errorf("expected kind untouched, got %s", slot.Kind)
	}
}

func TestUpdateSlot_MissingIDIsNoop(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{
		slotAt("a", 9, 0, 10, 0, entity.SlotKindClass),
	}

	newStart := 1
	e.UpdateSlot(ws, entity.Monday, "missing", SlotUpdate{StartTime: &newStart})
	if ws.Day(entity.Monday).Slots[0].StartTime != 9*3600 {
		t.Error("expected schedule unchanged for unknown slot id")
	}
}

// ── Validate ──

func TestValidate_CleanScheduleHasNoErrors(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{
		slotAt("a", 8, 0, 9, 0, entity.SlotKindClass),
		slotAt("b", 9, 0, 10, 0, entity.SlotKindBreak), // touching endpoints do not collide
	}

	if errs := e.Validate(ws); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_InvertedSlotReportedOnce(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Wednesday).Slots = []entity.TimeSlot{
		slotAt("a", 10, 0, 9, 0, entity.SlotKindClass),
	}

	errs := e.Validate(ws)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if !strings.Contains(errs[0], "wednesday") {
		t.Errorf("expected error to name the day, got %q", errs[0])
	}
	if !strings.Contains(errs[0], "start time must be before end time") {
		t.Errorf("unexpected error text %q", errs[0])
	}
}

func TestValidate_CollisionReportedOncePerPair(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Tuesday).Slots = []entity.TimeSlot{
		slotAt("a", 9, 0, 10, 0, entity.SlotKindClass),
		slotAt("b", 9, 30, 10, 30, entity.SlotKindBreak),
	}

	errs := e.Validate(ws)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one collision error, got %v", errs)
	}
	for _, want := range []string{"tuesday", "9:00 AM", "10:00 AM", "9:30 AM", "10:30 AM"} {
		if !strings.Contains(errs[0], want) {
			t.Errorf("expected error to mention %q, got %q", want, errs[0])
		}
	}
}

func TestValidate_CollisionSymmetricInInputOrder(t *testing.T) {
	e := newTestEngine()

	build := func(first, second entity.TimeSlot) []string {
		ws := entity.NewWeeklySchedule()
		ws.Day(entity.Monday).Slots = []entity.TimeSlot{first, second}
		return e.Validate(ws)
	}

	a := slotAt("a", 9, 0, 10, 0, entity.SlotKindClass)
	b := slotAt("b", 9, 30, 10, 30, entity.SlotKindClass)

	ab := build(a, b)
	ba := build(b, a)
	if len(ab) != 1 || len(ba) != 1 {
		t.Fatalf("expected one collision either way, got %v and %v", ab, ba)
	}
	if ab[0] != ba[0] {
		t.Errorf("expected identical report regardless of input order:\n%q\n%q", ab[0], ba[0])
	}
}

func TestValidate_NonOverlappingPairsNotReported(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{
		slotAt("a", 8, 0, 9, 0, entity.SlotKindClass),
		slotAt("b", 12, 0, 13, 0, entity.SlotKindClass),
	}

	if errs := e.Validate(ws); len(errs) != 0 {
		t.Errorf("expected no errors for disjoint slots, got %v", errs)
	}
}

func TestValidate_SameStartTieBreaksDeterministically(t *testing.T) {
	e := newTestEngine()

	build := func(order ...entity.TimeSlot) []string {
		ws := entity.NewWeeklySchedule()
		ws.Day(entity.Thursday).Slots = order
		return e.Validate(ws)
	}

	a := slotAt("a", 9, 0, 10, 0, entity.SlotKindClass)
	b := slotAt("b", 9, 0, 9, 30, entity.SlotKindBreak)

	first := build(a, b)
	second := build(b, a)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one collision, got %v and %v", first, second)
	}
	if first[0] != second[0] {
		t.Errorf("tie-break not deterministic:\n%q\n%q", first[0], second[0])
	}
}

func TestValidate_DaysCheckedIndependently(t *testing.T) {
	e := newTestEngine()
	ws := entity.NewWeeklySchedule()
	// Same interval on two days never collides across days
	ws.Day(entity.Monday).Slots = []entity.TimeSlot{slotAt("a", 9, 0, 10, 0, entity.SlotKindClass)}
	ws.Day(entity.Tuesday).Slots = []entity.TimeSlot{slotAt("b", 9, 0, 10, 0, entity.SlotKindClass)}

	if errs := e.Validate(ws); len(errs) != 0 {
		t.Errorf("expected no cross-day collisions, got %v", errs)
	}
}

// ── FormatTime ──

func TestFormatTime(t *testing.T) {
	e := newTestEngine()

	cases := []struct {
		seconds int
		want    string
	}{
		{0, "12:00 AM"},
		{9 * 3600, "9:00 AM"},
		{9*3600 + 30*60, "9:30 AM"},
		{12 * 3600, "12:00 PM"},
		{13*3600 + 5*60, "1:05 PM"},
		{23*3600 + 45*60, "11:45 PM"},
	}
	for _, tc := range cases {
		if got := e.FormatTime(tc.seconds); got != tc.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatTime_StableAcrossDisplayOffsets(t *testing.T) {
	// The rendered clock time depends only on the second offset, not on
	// which fixed zone anchors the display.
	a := NewEngine(8)
	b := NewEngine(-5)

	if a.FormatTime(9*3600) != b.FormatTime(9*3600) {
		t.Error("expected offset-independent rendering of the same second offset")
	}
}
