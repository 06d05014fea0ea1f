package llm

import (
	"net/http"

	"github.com/Abraxas-365/interviewer/pkg/errx"
)

var errRegistry = errx.NewRegistry("LLM")

var (
	ErrCodeUpstreamFailure = errRegistry.Register(
		"UPSTREAM_FAILURE",
		errx.TypeExternal,
		http.StatusInternalServerError,
		"Chat completion request failed",
	)

	ErrCodeEmptyCompletion = errRegistry.Register(
		"EMPTY_COMPLETION",
		errx.TypeExternal,
		http.StatusInternalServerError,
		"Chat completion returned no choices",
	)
)

func ErrUpstreamFailure(cause error) *errx.Error {
	return errRegistry.NewWithCause(ErrCodeUpstreamFailure, cause)
}

func ErrEmptyCompletion() *errx.Error {
	return errRegistry.New(ErrCodeEmptyCompletion)
}
