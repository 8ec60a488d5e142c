package components

import (
	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/domain"
)

func taskStatusOptions() []string {
	statuses := domain.TaskStatuses()
	options := make([]string, len(statuses))
	for i, s := range statuses {
		options[i] = string(s)
	}
	return options
}

// NewTaskForm creates the task create dialog.
func NewTaskForm() *Form {
	return NewForm("¿Una nueva tarea?", false,
		TextField("name", "Tarea", "¿Cuál es el nombre de la tarea?", ""),
		TextField("description", "Descripción", "¿De qué trata la tarea?", ""),
		ChoiceField("status", "Estado", taskStatusOptions(), 0),
	)
}

// NewEditTaskForm creates the task edit dialog pre-populated from the
// selected task.
func NewEditTaskForm(t domain.Task) *Form {
	statusIdx := 0
	for i, s := range domain.TaskStatuses() {
		if s == t.Status {
			statusIdx = i
		}
	}
	return NewForm("Actualizar tarea", true,
		TextField("name", "Tarea", "", t.Name),
		TextField("description", "Descripción", "", t.Description),
		ChoiceField("status", "Estado", taskStatusOptions(), statusIdx),
	)
}

// TaskPayloadFromForm builds and validates the payload for submission.
func TaskPayloadFromForm(f *Form, deliverableID string) (api.TaskPayload, error) {
	f.ClearErrors()
	payload := api.TaskPayload{
		Name:          f.Value("name"),
		Description:   f.Value("description"),
		Status:        domain.TaskStatus(f.Choice("status")),
		DeliverableID: deliverableID,
	}
	if err := api.Validate(payload); err != nil {
		f.ApplyValidation(err)
		return payload, err
	}
	return payload, nil
}
