package request

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the closed set of request states.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Request is an employee's ask for an asset, awaiting an HR decision.
// No check that the referenced asset exists or has availability is
// made at submission time.
type Request struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AssetID       string             `bson:"assetId,omitempty" json:"assetId,omitempty"`
	AssetName     string             `bson:"assetName" json:"assetName"`
	AssetType     string             `bson:"assetType,omitempty" json:"assetType,omitempty"`
	EmployeeEmail string             `bson:"employeeEmail" json:"employeeEmail"`
	EmployeeName  string             `bson:"employeeName,omitempty" json:"employeeName,omitempty"`
	HREmail       string             `bson:"hrEmail" json:"hrEmail"`
	CompanyName   string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	Note          string             `bson:"note,omitempty" json:"note,omitempty"`
	RequestDate   time.Time          `bson:"requestDate" json:"requestDate"`
	RequestStatus Status             `bson:"requestStatus" json:"requestStatus"`
	ProcessedDate *time.Time         `bson:"processedDate,omitempty" json:"processedDate,omitempty"`
}
