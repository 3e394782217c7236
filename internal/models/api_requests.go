package models

// WindowRequest is the report window taken from query parameters.
type WindowRequest struct {
	Window string `validate:"omitempty,oneof=current previous range all"`
	From   string `validate:"required_if=Window range"`
	To     string `validate:"required_if=Window range"`
}

// RefreshRequest asks the worker pool to rebuild and snapshot standings.
type RefreshRequest struct {
	Formats []string `json:"formats" validate:"omitempty,dive,oneof=wood points combined nines rats relay ranking"`
	Window  string   `json:"window" validate:"omitempty,oneof=current previous all"`
}

type RefreshResponse struct {
	Jobs []string `json:"jobs"`
}
