package dto

// Error represents a standard error response. Code is a machine-readable
// identifier; Error is the human-readable message.
type Error struct {
	Code  string `json:"code,omitempty" example:"CITY_NOT_AVAILABLE"`
	Error string `json:"error" example:"error message"`
}
