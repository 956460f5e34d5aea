package asseterrors

import (
	"net/http"

	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
)

var (
	ErrInvalidProductType = apperror.New(
		apperror.CodeInvalidInput,
		"productType must be 'Returnable' or 'Non-returnable'",
		http.StatusBadRequest,
	)
	ErrNegativeQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"productQuantity must be >= 0",
		http.StatusBadRequest,
	)
	ErrInvalidAssetID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid asset ID",
		http.StatusBadRequest,
	)
	ErrEmptyPatch = apperror.New(
		apperror.CodeInvalidInput,
		"Update must set or increment at least one field",
		http.StatusBadRequest,
	)
)
