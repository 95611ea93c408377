package entity

// Badge event kinds emitted by the RFID bridge. Consumers filter on Type
// themselves; the client forwards everything.
const (
	EventTypeBadgeRead    = "RFID-READ"
	EventTypeStatusChange = "STATUS-CHANGE"
)

// BadgeEvent is one message from the bridge: a scanned tag, or a presence
// status change whose payload is only a refetch trigger.
type BadgeEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// IsZero reports whether no event has been seen yet
func (e BadgeEvent) IsZero() bool {
	return e.Type == "" && e.Data == ""
}
