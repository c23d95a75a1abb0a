package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Principal is the identity attached to a request by the auth middleware:
// either anonymous or a specific user email. Handlers read only this value,
// never the cookie or header directly.
type Principal struct {
	Email string
}

func (p Principal) Authenticated() bool {
	return p.Email != ""
}
