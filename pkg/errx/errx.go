package errx

import "fmt"

// Type classifies an error for clients and logging
type Type string

const (
	TypeValidation   Type = "VALIDATION"
	TypeNotFound     Type = "NOT_FOUND"
	TypeBusiness     Type = "BUSINESS"
	TypeUnauthorized Type = "UNAUTHORIZED"
	TypeExternal     Type = "EXTERNAL"
	TypeInternal     Type = "INTERNAL"
)

// Code identifies a registered error kind
type Code string

// Error is a rich error carrying an HTTP status and structured details
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"status"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key/value pair to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// IsType reports whether err is an *Error of the given type
func IsType(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds error definitions for one package, namespaced by prefix
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with the given namespace
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register defines an error kind and returns its code
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.definitions[full] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an error from a registered code
func (r *Registry) New(code Code) *Error {
	def := r.definitions[code]
	return &Error{
		Code:       code,
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithMessage creates an error with a message overriding the registered one
func (r *Registry) NewWithMessage(code Code, message string) *Error {
	e := r.New(code)
	e.Message = message
	return e
}

// NewWithCause creates an error wrapping an underlying cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.Cause = cause
	return e
}
