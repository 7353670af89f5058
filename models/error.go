package models

type Error struct {
	Message string `json:"message"`
}

// FieldError carries one validation message for one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields"`
}
