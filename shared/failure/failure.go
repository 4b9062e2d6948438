package failure

import (
	"errors"
	"net/http"
)

// Kind names the class of a failure independently of its transport code.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest turns err into a validation failure keeping its message. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// InternalError keeps the message of err, which is returned to the client as is.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusInternalServerError, Message: err.Error()}
}

// NotFound reports a missing entity, e.g. NotFound("property not found").
func NotFound(message string) error {
	return &Failure{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &Failure{Code: http.StatusConflict, Message: message}
}

// GetCode returns the HTTP status for err. Anything that is not a Failure is a 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf classifies err. Unknown codes and plain errors are internal.
func KindOf(err error) Kind {
	switch GetCode(err) {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindInternal
	}
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return err != nil && KindOf(err) == KindConflict
}

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}
