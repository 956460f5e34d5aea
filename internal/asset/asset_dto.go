package asset

import "github.com/udoykumar/assets-verse-server/internal/shared/response"

type CreateAssetRequest struct {
	ProductName     string `json:"productName" binding:"required"`
	ProductImage    string `json:"productImage"`
	ProductType     string `json:"productType" binding:"required"`
	ProductQuantity *int   `json:"productQuantity" binding:"required"`
	HREmail         string `json:"hrEmail" binding:"required,email"`
	CompanyName     string `json:"companyName"`
}

type CreateAssetResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
	Asset      Asset  `json:"asset"`
}

// ListQuery carries the public listing filters: pagination, the
// availability filter, and a case-insensitive product-name search.
type ListQuery struct {
	Page          int
	Limit         int
	AvailableOnly bool
	Search        string
}

type ListAssetsResponse struct {
	response.ListMeta
	Assets []Asset `json:"assets"`
}

// UpdateAssetCommand enumerates the patchable fields and the counters
// that may be incremented; client input never reaches store operators
// directly. Decrementing availableQuantity after an assignment goes
// through Inc.AvailableQuantity with a negative delta.
type UpdateAssetCommand struct {
	Set AssetFieldPatch   `json:"set"`
	Inc AssetCounterPatch `json:"inc"`
}

type AssetFieldPatch struct {
	ProductName       *string `json:"productName"`
	ProductImage      *string `json:"productImage"`
	ProductType       *string `json:"productType"`
	ProductQuantity   *int    `json:"productQuantity"`
	AvailableQuantity *int    `json:"availableQuantity"`
	CompanyName       *string `json:"companyName"`
}

type AssetCounterPatch struct {
	ProductQuantity   *int `json:"productQuantity"`
	AvailableQuantity *int `json:"availableQuantity"`
}

func (c UpdateAssetCommand) IsEmpty() bool {
	s, i := c.Set, c.Inc
	return s.ProductName == nil && s.ProductImage == nil && s.ProductType == nil &&
		s.ProductQuantity == nil && s.AvailableQuantity == nil && s.CompanyName == nil &&
		i.ProductQuantity == nil && i.AvailableQuantity == nil
}

type UpdateSummary struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteSummary struct {
	DeletedCount int64 `json:"deletedCount"`
}
