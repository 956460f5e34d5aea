package request

type CreateRequestRequest struct {
	AssetID       string `json:"assetId"`
	AssetName     string `json:"assetName" binding:"required"`
	AssetType     string `json:"assetType"`
	EmployeeEmail string `json:"employeeEmail" binding:"required,email"`
	EmployeeName  string `json:"employeeName"`
	HREmail       string `json:"hrEmail" binding:"required,email"`
	CompanyName   string `json:"companyName"`
	Note          string `json:"note"`
}

type CreateRequestResponse struct {
	InsertedID string `json:"insertedId"`
}

// UpdateRequestCommand only allows the status to change, and only to
// a value in the closed enum.
type UpdateRequestCommand struct {
	RequestStatus string `json:"requestStatus" binding:"required"`
}

type UpdateSummary struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
