package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a client-reported record of a completed checkout. The
// transactionId is the dedup key; recording is not provider-confirmed.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        float64            `bson:"amount" json:"amount"`
	Email         string             `bson:"email" json:"email"`
	PackageName   string             `bson:"packageName,omitempty" json:"packageName,omitempty"`
	EmployeeLimit int                `bson:"employeeLimit,omitempty" json:"employeeLimit,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}
