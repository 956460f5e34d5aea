package affiliation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Affiliation links an employee to the HR account they belong to.
// Uniqueness on (employeeEmail, hrEmail) is a write-time pre-check,
// not a storage constraint.
type Affiliation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EmployeeEmail   string             `bson:"employeeEmail" json:"employeeEmail"`
	EmployeeName    string             `bson:"employeeName,omitempty" json:"employeeName,omitempty"`
	HREmail         string             `bson:"hrEmail" json:"hrEmail"`
	CompanyName     string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	AffiliationDate time.Time          `bson:"affiliationDate" json:"affiliationDate"`
	Status          Status             `bson:"status" json:"status"`
}
