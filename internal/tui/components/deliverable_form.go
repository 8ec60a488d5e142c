package components

import (
	"errors"
	"strconv"
	"time"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
)

// deadlineLayout is the input format for deliverable deadlines.
const deadlineLayout = "2006-01-02 15:04"

var errFormInvalid = errors.New("form input is invalid")

func deliverableStatusOptions() []string {
	statuses := domain.DeliverableStatuses()
	options := make([]string, len(statuses))
	for i, s := range statuses {
		options[i] = string(s)
	}
	return options
}

// NewDeliverableForm creates the deliverable create dialog.
func NewDeliverableForm() *Form {
	return NewForm("¿Tienes una nueva entrega?", false,
		TextField("deadline", "Fecha límite", deadlineLayout, ""),
		TextField("name", "Entregable", "¿Cuál es el nombre del entregable?", ""),
		TextField("description", "Descripción", "¿De qué trata el entregable?", ""),
		TextField("note", "Calificación (0-100)", "0", "0"),
		TextField("percent", "Porcentaje (0-100)", "0", "0"),
		ChoiceField("status", "Estado", deliverableStatusOptions(), 0),
	)
}

// NewEditDeliverableForm creates the deliverable edit dialog pre-populated
// from the selected deliverable.
func NewEditDeliverableForm(d domain.Deliverable) *Form {
	statusIdx := 0
	for i, s := range domain.DeliverableStatuses() {
		if s == d.Status {
			statusIdx = i
		}
	}
	return NewForm("Actualizar entregable", true,
		TextField("deadline", "Fecha límite", deadlineLayout, d.Deadline.Format(deadlineLayout)),
		TextField("name", "Entregable", "", d.Name),
		TextField("description", "Descripción", "", d.Description),
		TextField("note", "Calificación (0-100)", "", strconv.FormatFloat(d.Note, 'f', -1, 64)),
		TextField("percent", "Porcentaje (0-100)", "", strconv.FormatFloat(d.Percent, 'f', -1, 64)),
		ChoiceField("status", "Estado", deliverableStatusOptions(), statusIdx),
	)
}

// DeliverablePayloadFromForm builds and validates the payload for
// submission. Parse failures and rule violations land on the form as field
// messages; a non-nil error means no network call may follow.
func DeliverablePayloadFromForm(f *Form, courseID string) (api.DeliverablePayload, error) {
	f.ClearErrors()

	payload := api.DeliverablePayload{
		Name:        f.Value("name"),
		Description: f.Value("description"),
		Status:      domain.DeliverableStatus(f.Choice("status")),
		CourseID:    courseID,
	}

	deadline, err := time.ParseInLocation(deadlineLayout, f.Value("deadline"), time.Local)
	if err != nil {
		f.SetFieldError("deadline", "fecha inválida (AAAA-MM-DD HH:MM)")
	} else {
		payload.Deadline = deadline
	}

	if note, err := strconv.ParseFloat(f.Value("note"), 64); err != nil {
		f.SetFieldError("note", "número inválido")
	} else {
		payload.Note = note
	}

	if percent, err := strconv.ParseFloat(f.Value("percent"), 64); err != nil {
		f.SetFieldError("percent", "número inválido")
	} else {
		payload.Percent = percent
	}

	if verr := api.Validate(payload); verr != nil {
		f.ApplyValidation(verr)
	}
	if f.HasErrors() {
		return payload, errFormInvalid
	}
	return payload, nil
}
