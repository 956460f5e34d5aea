package response

import (
	"github.com/gin-gonic/gin"

	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
)

// ListMeta is the pagination block returned by paginated listings.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewListMeta(total int64, page, limit int) ListMeta {
	totalPages := 0
	if limit > 0 {
		// ceil(total/limit)
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return ListMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// JSON writes a success body as-is. Bodies vary per endpoint (raw
// documents, wrapped results, computed aggregates), so there is no
// envelope.
func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// Error writes the {"error": message} shape every failure uses.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FromError maps an error through the apperror taxonomy and writes it.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Message)
}
