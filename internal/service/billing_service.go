package service

import (
	"coachdesk/platform/internal/config"
)

// Tier is a subscription level exposed to the pricing page. PriceID is the
// external billing provider's price identifier; checkout happens against
// the provider, not here.
type Tier struct {
	Name       string `json:"name"`
	PriceID    string `json:"priceId"`
	MaxClients int    `json:"maxClients"`
}

// BillingService exposes the configured subscription tiers.
type BillingService interface {
	Tiers() []Tier
	// TierByName resolves a trainer's stored tier name; false when the
	// configuration no longer carries it.
	TierByName(name string) (Tier, bool)
}

type billingService struct {
	tiers []Tier
}

// NewBillingService creates a billingService from configuration.
func NewBillingService(cfg config.BillingConfig) BillingService {
	tiers := make([]Tier, len(cfg.Tiers))
	for i, t := range cfg.Tiers {
		tiers[i] = Tier{Name: t.Name, PriceID: t.PriceID, MaxClients: t.MaxClients}
	}
	return &billingService{tiers: tiers}
}

func (s *billingService) Tiers() []Tier {
	return s.tiers
}

func (s *billingService) TierByName(name string) (Tier, bool) {
	for _, t := range s.tiers {
		if t.Name == name {
			return t, true
		}
	}
	return Tier{}, false
}
