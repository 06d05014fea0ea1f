package interview

import (
	"net/http"

	"github.com/Abraxas-365/interviewer/pkg/errx"
)

var errRegistry = errx.NewRegistry("INTERVIEW")

var (
	ErrCodeInvalidRequest = errRegistry.Register(
		"INVALID_REQUEST",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid request body",
	)

	ErrCodeMissingField = errRegistry.Register(
		"MISSING_FIELD",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Missing required field",
	)
)

func NewInvalidRequestError() *errx.Error {
	return errRegistry.New(ErrCodeInvalidRequest)
}

func NewMissingFieldError(reason string) *errx.Error {
	return errRegistry.NewWithMessage(ErrCodeMissingField, reason)
}
