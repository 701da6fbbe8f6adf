package domain

import "time"

// Contact is a message from the contact form. It has no lifecycle beyond
// creation and notification.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Service   *string   `json:"service"`
	Address   *string   `json:"address"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
