package response

// ErrResp is the standard JSON error body: {"error": "...", "details": "..."}.
type ErrResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
