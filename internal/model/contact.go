package model

import "time"

// ContactSubmission represents a message submitted via the contact form.
// ID and SubmittedAt are assigned by the store on insert.
type ContactSubmission struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Message     string    `json:"message,omitempty" db:"message"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}
