package pkg

import "fmt"

// AppError is the error envelope returned by the HTTP adapters.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []ErrorDetail
}

// ErrorDetail points at a single offending field.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails returns a copy of e carrying field level details.
func (e *AppError) WithDetails(details ...ErrorDetail) *AppError {
	cp := *e
	cp.Details = append([]ErrorDetail(nil), details...)
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError hides the wrapped cause; it is logged, not returned to callers.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
