package asset

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductType is the closed set of asset categories.
type ProductType string

const (
	TypeReturnable    ProductType = "Returnable"
	TypeNonReturnable ProductType = "Non-returnable"
)

func (t ProductType) IsValid() bool {
	return t == TypeReturnable || t == TypeNonReturnable
}

// Asset is a document in the assets collection, owned by the HR email
// that created it.
type Asset struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductName       string             `bson:"productName" json:"productName"`
	ProductImage      string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	ProductType       ProductType        `bson:"productType" json:"productType"`
	ProductQuantity   int                `bson:"productQuantity" json:"productQuantity"`
	AvailableQuantity int                `bson:"availableQuantity" json:"availableQuantity"`
	DateAdded         time.Time          `bson:"dateAdded" json:"dateAdded"`
	HREmail           string             `bson:"hrEmail" json:"hrEmail"`
	CompanyName       string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
}
