package analytics

// Distribution summarizes an HR's inventory by product type.
type Distribution struct {
	Returnable    int `json:"returnable"`
	NonReturnable int `json:"nonReturnable"`
}

// RequestCount is one entry in the top-requests ranking.
type RequestCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
