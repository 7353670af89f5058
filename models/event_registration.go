package models

// EventRegistration is one attendee's signup row, inserted once per
// successful submission and never updated or deleted afterwards.
type EventRegistration struct {
	ID           int    `json:"id,omitempty"`
	EventID      int    `json:"event_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	StudentID    string `json:"student_id"`
	Department   string `json:"department"`
	YearSemester string `json:"year_semester"`
	Contact      string `json:"contact"`
	Message      string `json:"message,omitempty"`
}

// RegistrationForm is the request body of POST /events/{id}/register.
// The student_id field accepts the literal NA for applicants without an
// enrollment number yet.
type RegistrationForm struct {
	Name         string `json:"name" validate:"required,min=3,name_chars"`
	Email        string `json:"email" validate:"required,email"`
	StudentID    string `json:"student_id" validate:"required,enrollment"`
	Department   string `json:"department" validate:"required"`
	YearSemester string `json:"year_semester" validate:"required"`
	Contact      string `json:"contact" validate:"required,contact"`
	Message      string `json:"message"`
}

type RegistrationResponse struct {
	RegistrationID int   `json:"registration_id"`
	Event          Event `json:"event"`
}
