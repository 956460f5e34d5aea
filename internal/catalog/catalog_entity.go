package catalog

import "go.mongodb.org/mongo-driver/bson/primitive"

// Package is a static subscription-plan document. Read-only from the
// API's perspective; seeded out of band.
type Package struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Price         int64              `bson:"price" json:"price"`
	EmployeeLimit int                `bson:"employeeLimit" json:"employeeLimit"`
	Features      []string           `bson:"features,omitempty" json:"features,omitempty"`
}

type Testimonial struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Role    string             `bson:"role,omitempty" json:"role,omitempty"`
	Company string             `bson:"company,omitempty" json:"company,omitempty"`
	Message string             `bson:"message" json:"message"`
	Rating  int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Photo   string             `bson:"photo,omitempty" json:"photo,omitempty"`
}
