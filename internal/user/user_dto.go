package user

type RegisterUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Photo       string `json:"photo"`
	CompanyName string `json:"companyName"`
	CompanyLogo string `json:"companyLogo"`
}

// RegisterResponse carries either the "user exists" message or the
// inserted id, never both.
type RegisterResponse struct {
	Message    string `json:"message,omitempty"`
	InsertedID string `json:"insertedId,omitempty"`
}

type RoleResponse struct {
	Role Role `json:"role"`
}

// UpdateUserCommand enumerates what a patch may touch. Only the fields
// here can be written, and only the counters here can be incremented;
// client input never reaches store operators directly.
type UpdateUserCommand struct {
	Set UserFieldPatch   `json:"set"`
	Inc UserCounterPatch `json:"inc"`
}

type UserFieldPatch struct {
	Name         *string `json:"name"`
	Photo        *string `json:"photo"`
	CompanyName  *string `json:"companyName"`
	CompanyLogo  *string `json:"companyLogo"`
	Subscription *string `json:"subscription"`
	PackageLimit *int    `json:"packageLimit"`
}

type UserCounterPatch struct {
	CurrentEmployees *int `json:"currentEmployees"`
	PackageLimit     *int `json:"packageLimit"`
}

// IsEmpty reports whether the command patches nothing.
func (c UpdateUserCommand) IsEmpty() bool {
	s, i := c.Set, c.Inc
	return s.Name == nil && s.Photo == nil && s.CompanyName == nil &&
		s.CompanyLogo == nil && s.Subscription == nil && s.PackageLimit == nil &&
		i.CurrentEmployees == nil && i.PackageLimit == nil
}

// UpdateSummary reports what an update or delete touched.
type UpdateSummary struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteSummary struct {
	DeletedCount int64 `json:"deletedCount"`
}
