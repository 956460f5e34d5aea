package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the stored account role. It is fixed at registration; there
// is no role-change endpoint.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
)

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleHR
}

// User is a document in the users collection. HR accounts carry the
// subscription fields; employee accounts omit them.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name,omitempty" json:"name,omitempty"`
	Email            string             `bson:"email" json:"email"`
	Photo            string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role             Role               `bson:"role" json:"role"`
	CompanyName      string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	CompanyLogo      string             `bson:"companyLogo,omitempty" json:"companyLogo,omitempty"`
	PackageLimit     *int               `bson:"packageLimit,omitempty" json:"packageLimit,omitempty"`
	CurrentEmployees *int               `bson:"currentEmployees,omitempty" json:"currentEmployees,omitempty"`
	Subscription     string             `bson:"subscription,omitempty" json:"subscription,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
