package components

import (
	"strconv"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
)

func sessionTypeOptions() []string {
	types := domain.SessionTypes()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = string(t)
	}
	return options
}

// NewSessionForm creates the study-session create dialog.
func NewSessionForm() *Form {
	return NewForm("¿Una nueva sesión?", false,
		TextField("name", "Sesión", "¿Cómo se llama la sesión?", ""),
		TextField("duration", "Duración (minutos)", "25", ""),
		ChoiceField("type", "Tipo", sessionTypeOptions(), 0),
	)
}

// NewEditSessionForm creates the session edit dialog pre-populated from
// the selected session.
func NewEditSessionForm(s domain.StudySession) *Form {
	typeIdx := 0
	for i, t := range domain.SessionTypes() {
		if t == s.Type {
			typeIdx = i
		}
	}
	return NewForm("Actualizar sesión", true,
		TextField("name", "Sesión", "", s.Name),
		TextField("duration", "Duración (minutos)", "", strconv.Itoa(s.Duration)),
		ChoiceField("type", "Tipo", sessionTypeOptions(), typeIdx),
	)
}

// SessionPayloadFromForm builds and validates the payload for submission.
func SessionPayloadFromForm(f *Form) (api.SessionPayload, error) {
	f.ClearErrors()

	payload := api.SessionPayload{
		Name: f.Value("name"),
		Type: domain.SessionType(f.Choice("type")),
	}

	if duration, err := strconv.Atoi(f.Value("duration")); err != nil {
		f.SetFieldError("duration", "número inválido")
	} else {
		payload.Duration = duration
	}

	if verr := api.Validate(payload); verr != nil {
		f.ApplyValidation(verr)
	}
	if f.HasErrors() {
		return payload, errFormInvalid
	}
	return payload, nil
}
