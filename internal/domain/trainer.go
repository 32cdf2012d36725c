package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerRole distinguishes a trainer-scoped account from a platform-wide
// administrator inside the trainers collection.
type TrainerRole string

const (
	TrainerRoleTrainer TrainerRole = "trainer"
	TrainerRoleAdmin   TrainerRole = "admin"
)

// Trainer is a tenant of the platform. A platform admin is stored in the
// same collection with RoleAdmin and no trainer scope of its own.
type Trainer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         TrainerRole        `bson:"role" json:"role"`
	BusinessName string             `bson:"businessName,omitempty" json:"businessName,omitempty"`
	// Tier references a configured billing price tier by name.
	Tier      string    `bson:"tier,omitempty" json:"tier,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Platform flags a cross-tenant administrator. Only meaningful when
	// Role is admin.
	Platform bool `bson:"platform,omitempty" json:"platform,omitempty"`
}

func (t *Trainer) IsPlatformAdmin() bool {
	return t.Role == TrainerRoleAdmin && t.Platform
}
