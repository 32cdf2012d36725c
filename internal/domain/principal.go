package domain

// PrincipalKind distinguishes the three session schemes.
type PrincipalKind string

const (
	KindCustomer      PrincipalKind = "customer"
	KindTrainer       PrincipalKind = "trainer"
	KindPlatformAdmin PrincipalKind = "platform-admin"
)

// Principal is the authenticated identity resolved from a request.
//
// Invariants: a platform-admin never carries a TrainerID; a trainer always
// does. The validator enforces this mapping, handlers only read it.
type Principal struct {
	Kind  PrincipalKind
	ID    string
	Email string

	// TrainerID scopes a trainer-kind principal to one trainer's
	// resources. Empty for customers and platform admins.
	TrainerID string
}

func (p *Principal) IsPlatformAdmin() bool {
	return p != nil && p.Kind == KindPlatformAdmin
}

func (p *Principal) IsTrainer() bool {
	return p != nil && p.Kind == KindTrainer
}

func (p *Principal) IsCustomer() bool {
	return p != nil && p.Kind == KindCustomer
}
