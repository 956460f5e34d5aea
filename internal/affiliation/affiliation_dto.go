package affiliation

import "github.com/udoykumar/assets-verse-server/internal/user"

type CreateAffiliationRequest struct {
	EmployeeEmail string `json:"employeeEmail" binding:"required,email"`
	EmployeeName  string `json:"employeeName"`
	HREmail       string `json:"hrEmail" binding:"required,email"`
	CompanyName   string `json:"companyName"`
}

type CreateAffiliationResponse struct {
	Message    string `json:"message,omitempty"`
	Inserted   bool   `json:"inserted"`
	InsertedID string `json:"insertedId,omitempty"`
}

// TeamMember is a user document joined with how many assets they
// currently hold.
type TeamMember struct {
	user.User
	AssetCount int64 `json:"assetCount"`
}

type DeleteSummary struct {
	DeletedCount int64 `json:"deletedCount"`
}
