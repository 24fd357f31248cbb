package domain

import "time"

// ProviderStatus is the provider's self-reported presence status
type ProviderStatus string

const (
	ProviderActive  ProviderStatus = "active"
	ProviderBusy    ProviderStatus = "busy"
	ProviderOffline ProviderStatus = "offline"
)

// Provider represents a service seller offering categories within towns.
// Phone is a contact field that must never be surfaced to customers;
// customer-facing read paths return a redacted copy.
type Provider struct {
	ID          int64
	DisplayName string
	Phone       string
	Email       string
	Rating      float64
	ReviewCount int
	CategoryIDs []int64
	TownIDs     []int64
	Status      ProviderStatus
	Enabled     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServesTown returns true if the provider operates in the given town
func (p *Provider) ServesTown(townID int64) bool {
	for _, id := range p.TownIDs {
		if id == townID {
			return true
		}
	}
	return false
}

// OffersCategory returns true if the provider offers the given category
func (p *Provider) OffersCategory(categoryID int64) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Redacted returns a copy of the provider with customer-hidden contact
// fields blanked out
func (p *Provider) Redacted() *Provider {
	clone := *p
	clone.Phone = ""
	return &clone
}
