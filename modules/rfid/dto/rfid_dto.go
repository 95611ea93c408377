package dto

// BridgeStatusResponse reports the bridge connection state for dashboards
type BridgeStatusResponse struct {
	Enabled     bool   `json:"enabled"`
	Connected   bool   `json:"connected"`
	Pulsing     bool   `json:"pulsing"`
	LastEvent   any    `json:"lastEvent,omitempty"`
	Subscribers int    `json:"subscribers"`
	Address     string `json:"address"`
}

// RecentScansResponse lists the most recently scanned badge tags, newest first
type RecentScansResponse struct {
	Tags []string `json:"tags"`
}
