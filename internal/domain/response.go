package domain

import "errors"

// Code is the closed response taxonomy every remote operation resolves to.
// Dialogs branch on it: Unauthorized clears the session and returns to
// login, Success closes and resets the active form, anything else surfaces
// a notification.
type Code int

const (
	Success Code = iota
	BadRequest
	Unauthorized
	NotFound
	InternalServerError
)

// String returns the wire-style name of the code.
func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case BadRequest:
		return "BAD_REQUEST"
	case Unauthorized:
		return "UNAUTHORIZE"
	case NotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// Message returns the user-facing notification text for a failure code.
func (c Code) Message() string {
	switch c {
	case Success:
		return ""
	case BadRequest:
		return "Parece que hubo un inconveniente con el servidor"
	case Unauthorized:
		return "Parece que no tiene autorización para estar aquí"
	case NotFound:
		return "No se encontró el registro"
	default:
		return "Algo salió mal, intente de nuevo"
	}
}

// CodeFromError flattens a transport error into the response taxonomy.
// A nil error is Success; unrecognized errors collapse to
// InternalServerError, matching the server-offline path.
func CodeFromError(err error) Code {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrBadRequest):
		return BadRequest
	case errors.Is(err, ErrAuthFailed):
		return Unauthorized
	case errors.Is(err, ErrNotFound):
		return NotFound
	default:
		return InternalServerError
	}
}
