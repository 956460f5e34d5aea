package usererrors

import (
	"net/http"

	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
)

var ErrEmptyPatch = apperror.New(
	apperror.CodeInvalidInput,
	"Update must set or increment at least one field",
	http.StatusBadRequest,
)
