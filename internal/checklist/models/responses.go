package models

// LoadChecklistResponse is returned by the load exposure and by the client
// facade. ReadOnly is always present so the presentation layer never has to
// infer degraded mode from error types.
type LoadChecklistResponse struct {
	Checklist   *Record `json:"checklist"`
	IsOutdated  bool    `json:"isOutdated"`
	CurrentHash string  `json:"currentHash"`
	ReadOnly    bool    `json:"readOnly,omitempty"`
}

// SaveChecklistResponse acknowledges a persisted record.
type SaveChecklistResponse struct {
	Success bool   `json:"success"`
	Hash    string `json:"hash,omitempty"`
	Message string `json:"message,omitempty"`
}

// ComponentHashResponse reports the current fingerprint of a component
// source file. Exists is false when the file cannot be read; that is not an
// error, it means "treat any stored audit as stale".
type ComponentHashResponse struct {
	Hash   string `json:"hash"`
	Exists bool   `json:"exists"`
}

// ErrorResponse is the JSON envelope for non-2xx responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
