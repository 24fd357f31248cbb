package domain

import "time"

// Town represents a serviceable region that can be toggled on and off.
// Only enabled towns are offered to customers.
type Town struct {
	ID      int64
	Name    string
	Region  string
	Enabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubSection is a base variant of a service category
type SubSection struct {
	ID   int64
	Name string
}

// Addon is an optional extra offered within a category
type Addon struct {
	ID    int64
	Name  string
	Price *float64
}

// ServiceCategory is a service line with ordered sub-sections and addons.
// A category is offered in a town only through the explicit category-town
// relation, never implied by the category or the town alone.
type ServiceCategory struct {
	ID          int64
	Name        string
	IconTag     string
	Enabled     bool
	SubSections []SubSection
	Addons      []Addon

	CreatedAt time.Time
	UpdatedAt time.Time
}
