package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Messages are write-only: nothing in the API reads them back.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
