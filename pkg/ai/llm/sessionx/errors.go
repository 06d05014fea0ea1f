package sessionx

import (
	"net/http"

	"github.com/Abraxas-365/interviewer/pkg/errx"
)

var errRegistry = errx.NewRegistry("SESSION")

var (
	// No-session errors map to 400: the client asked to continue an
	// interview it never started.
	ErrCodeNoActiveInterview = errRegistry.Register(
		"NO_ACTIVE_INTERVIEW",
		errx.TypeNotFound,
		http.StatusBadRequest,
		"No active interview session",
	)

	ErrCodeStorageFailure = errRegistry.Register(
		"STORAGE_FAILURE",
		errx.TypeInternal,
		http.StatusInternalServerError,
		"Session storage operation failed",
	)
)

func ErrNoActiveInterview() *errx.Error {
	return errRegistry.New(ErrCodeNoActiveInterview)
}

func ErrStorageFailure(cause error) *errx.Error {
	return errRegistry.NewWithCause(ErrCodeStorageFailure, cause)
}
