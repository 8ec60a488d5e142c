package components

import (
	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
)

// NewCourseForm creates the course create dialog.
func NewCourseForm() *Form {
	return NewForm("¿Un nuevo curso?", false,
		TextField("name", "Nombre del curso", "¿Cómo se llama el curso?", ""),
	)
}

// NewEditCourseForm creates the course edit dialog pre-populated from the
// selected course.
func NewEditCourseForm(c domain.Course) *Form {
	return NewForm("Actualizar curso", true,
		TextField("name", "Nombre del curso", "", c.Name),
	)
}

// CoursePayloadFromForm builds and validates the payload for submission.
// On failure the field messages land on the form and the error is non-nil:
// no network call may follow.
func CoursePayloadFromForm(f *Form, careerID string) (api.CoursePayload, error) {
	f.ClearErrors()
	payload := api.CoursePayload{
		Name:     f.Value("name"),
		CareerID: careerID,
	}
	if err := api.Validate(payload); err != nil {
		f.ApplyValidation(err)
		return payload, err
	}
	return payload, nil
}
