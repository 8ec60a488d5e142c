package api

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dcastillo/studia/internal/domain"
)

// Payload DTOs for create/update endpoints. The validate tags mirror the
// form rules: a dialog must reject submission before any network call is
// issued.

// CareerPayload names a new career.
type CareerPayload struct {
	Name string `json:"name" validate:"required,min=5"`
}

// CoursePayload creates or replaces a course under a career.
type CoursePayload struct {
	Name     string `json:"name" validate:"required,min=5"`
	CareerID string `json:"career_id" validate:"required"`
}

// DeliverablePayload creates or replaces a deliverable under a course.
// Note and percent are inclusive 0-100; zero is a legal grade.
type DeliverablePayload struct {
	Name        string                   `json:"name" validate:"required,min=5"`
	Description string                   `json:"description" validate:"required,min=5"`
	Deadline    time.Time                `json:"deadline" validate:"required"`
	Status      domain.DeliverableStatus `json:"status" validate:"required,oneof=Pendiente Enviado"`
	Note        float64                  `json:"note" validate:"min=0,max=100"`
	Percent     float64                  `json:"percent" validate:"min=0,max=100"`
	CourseID    string                   `json:"course_id" validate:"required"`
}

// TaskPayload creates or replaces a task under a deliverable.
type TaskPayload struct {
	Name          string            `json:"name" validate:"required,min=5"`
	Description   string            `json:"description" validate:"required,min=10"`
	Status        domain.TaskStatus `json:"status" validate:"required,oneof=Incompleta Completada"`
	DeliverableID string            `json:"deliverable_id" validate:"required"`
}

// SessionPayload creates or replaces a study session preset.
type SessionPayload struct {
	Name     string             `json:"name" validate:"required,min=5"`
	Type     domain.SessionType `json:"type" validate:"required,oneof=Estudio Descanso"`
	Duration int                `json:"duration" validate:"required,min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under JSON field names, not Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors maps a field's JSON name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Validate checks a payload against its form rules. It returns nil when the
// payload may be submitted, or FieldErrors keyed by JSON field name.
func Validate(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		fieldErrs[fe.Field()] = fieldMessage(fe)
	}
	return fieldErrs
}

// fieldMessage translates a validation failure into the message the
// dialogs display next to the field.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es obligatorio"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("use al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("el valor mínimo es %s", fe.Param())
	case "max":
		return fmt.Sprintf("el valor máximo es %s", fe.Param())
	case "oneof":
		return "valor fuera del catálogo"
	default:
		return "valor inválido"
	}
}
