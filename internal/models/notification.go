package models

// Notification is a portal inbox entry. Timestamp is relative free text
// ("2 hours ago") carried through from the seed data as-is.
type Notification struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
	Link      string `json:"link,omitempty"`
}
