package models

// SaveChecklistRequest is the PUT /a11y-checklist/{identity} body.
type SaveChecklistRequest struct {
	Identity  string  `json:"identity"`
	Checklist *Record `json:"checklist"`
}
