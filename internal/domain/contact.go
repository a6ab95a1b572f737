package domain

import "time"

// Contact is a CRM contact. Contacts never cross user boundaries; an API
// key sees exactly the contacts of its owning user.
type Contact struct {
	ID          string
	OwnerUserID string
	Name        string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
