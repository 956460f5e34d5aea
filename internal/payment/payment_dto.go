package payment

// CheckoutRequest carries the plan price in major currency units;
// fractional prices like 15.5 are valid.
type CheckoutRequest struct {
	PackageName   string  `json:"packageName" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Email         string  `json:"email" binding:"required,email"`
	EmployeeLimit int     `json:"employeeLimit"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type RecordPaymentRequest struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
	Email         string  `json:"email" binding:"required,email"`
	PackageName   string  `json:"packageName"`
	EmployeeLimit int     `json:"employeeLimit"`
}

type RecordPaymentResponse struct {
	Inserted   bool   `json:"inserted"`
	Message    string `json:"message,omitempty"`
	InsertedID string `json:"insertedId,omitempty"`
}
