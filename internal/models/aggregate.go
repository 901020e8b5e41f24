package models

// Aggregate is the single persisted record holding every portal collection.
// It is always written and read whole; readers must see either the seeded
// structure or all five keys present as (possibly empty) slices.
type Aggregate struct {
	Students      []Student      `json:"students"`
	Teachers      []Teacher      `json:"teachers"`
	Articles      []Article      `json:"articles"`
	Resources     []Resource     `json:"resources"`
	Notifications []Notification `json:"notifications"`
}

// EmptyAggregate returns the fail-safe default: all five collections present
// and empty. Substituted whenever the backing record is absent or corrupt.
func EmptyAggregate() Aggregate {
	return Aggregate{
		Students:      []Student{},
		Teachers:      []Teacher{},
		Articles:      []Article{},
		Resources:     []Resource{},
		Notifications: []Notification{},
	}
}

// Normalize replaces nil collections with empty slices so a decoded record
// always satisfies the five-key contract.
func (a *Aggregate) Normalize() {
	if a.Students == nil {
		a.Students = []Student{}
	}
	if a.Teachers == nil {
		a.Teachers = []Teacher{}
	}
	if a.Articles == nil {
		a.Articles = []Article{}
	}
	if a.Resources == nil {
		a.Resources = []Resource{}
	}
	if a.Notifications == nil {
		a.Notifications = []Notification{}
	}
}
