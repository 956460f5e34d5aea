package assignedasset

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the closed set of assignment states.
type Status string

const (
	StatusAssigned Status = "assigned"
	StatusReturned Status = "returned"
)

func (s Status) IsValid() bool {
	return s == StatusAssigned || s == StatusReturned
}

// AssignedAsset records that an asset unit is held by an employee.
// Creating one does not touch the source asset's availableQuantity;
// the client drives that through the asset PATCH endpoint.
type AssignedAsset struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AssetID        string             `bson:"assetId" json:"assetId"`
	AssetName      string             `bson:"assetName" json:"assetName"`
	AssetImage     string             `bson:"assetImage,omitempty" json:"assetImage,omitempty"`
	AssetType      string             `bson:"assetType,omitempty" json:"assetType,omitempty"`
	EmployeeEmail  string             `bson:"employeeEmail" json:"employeeEmail"`
	EmployeeName   string             `bson:"employeeName,omitempty" json:"employeeName,omitempty"`
	HREmail        string             `bson:"hrEmail,omitempty" json:"hrEmail,omitempty"`
	CompanyName    string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	AssignmentDate time.Time          `bson:"assignmentDate" json:"assignmentDate"`
	ReturnDate     *time.Time         `bson:"returnDate" json:"returnDate"`
	Status         Status             `bson:"status" json:"status"`
}
