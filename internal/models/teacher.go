package models

// Teacher represents a member of the teaching staff. Teachers are read-only
// in the portal; the roster only changes through reseeding.
type Teacher struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Subjects       []string `json:"subjects"`
	Qualifications []string `json:"qualifications"`
	Bio            string   `json:"bio"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Image          string   `json:"image"`
}
