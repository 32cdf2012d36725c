package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Branding holds a trainer's portal customisation. The public read endpoint
// falls back to DefaultBranding on any failure and never surfaces an error.
type Branding struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TrainerID    primitive.ObjectID `bson:"trainerId" json:"-"`
	BusinessName string             `bson:"businessName" json:"businessName"`
	LogoKey      string             `bson:"logoKey,omitempty" json:"-"`
	LogoURL      string             `bson:"-" json:"logoUrl,omitempty"`
	PrimaryColor string             `bson:"primaryColor" json:"primaryColor"`
	AccentColor  string             `bson:"accentColor" json:"accentColor"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"-"`
}

// DefaultBranding returns the hardcoded defaults served when no branding
// row exists or the store is unreachable.
func DefaultBranding() Branding {
	return Branding{
		BusinessName: "CoachDesk",
		PrimaryColor: "#1a73e8",
		AccentColor:  "#fbbc04",
	}
}
