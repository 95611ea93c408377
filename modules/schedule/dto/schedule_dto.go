package dto

// ===================== Request DTOs =====================

// ValidateScheduleRequest carries a schedule in wire format for a dry-run
// validation pass (forms call this on every mutation before save).
type ValidateScheduleRequest struct {
	Schedule []WireDay `json:"schedule"`
}

// ===================== Response DTOs =====================

// ValidateScheduleResponse lists human-readable conflicts; save must be
// blocked while Errors is non-empty.
type ValidateScheduleResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
