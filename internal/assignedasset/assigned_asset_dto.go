package assignedasset

// AssignAssetRequest requires assetId, employeeEmail, and assetName;
// the remaining fields are denormalized display data.
type AssignAssetRequest struct {
	AssetID       string `json:"assetId" binding:"required"`
	AssetName     string `json:"assetName" binding:"required"`
	AssetImage    string `json:"assetImage"`
	AssetType     string `json:"assetType"`
	EmployeeEmail string `json:"employeeEmail" binding:"required,email"`
	EmployeeName  string `json:"employeeName"`
	HREmail       string `json:"hrEmail"`
	CompanyName   string `json:"companyName"`
}

type AssignAssetResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}
