package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/tui/styles"
)

// FieldKind distinguishes free-text fields from closed option sets.
type FieldKind int

const (
	FieldKindText FieldKind = iota
	FieldKindChoice
)

// Field is one line of a dialog form.
type Field struct {
	Name  string // JSON field name; validation errors key on it
	Label string
	Kind  FieldKind
	Err   string

	input   textinput.Model
	initial string

	options       []string
	choice        int
	initialChoice int
}

// TextField creates a free-text field pre-filled with a value.
func TextField(name, label, placeholder, value string) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	ti.Prompt = ""
	ti.SetValue(value)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Field{Name: name, Label: label, Kind: FieldKindText, input: ti, initial: value}
}

// PasswordField creates a text field with hidden echo.
func PasswordField(name, label string) Field {
	f := TextField(name, label, "", "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// ChoiceField creates a field cycling through a closed option set.
func ChoiceField(name, label string, options []string, selected int) Field {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Field{
		Name:          name,
		Label:         label,
		Kind:          FieldKindChoice,
		options:       options,
		choice:        selected,
		initialChoice: selected,
	}
}

// Form is a create/edit dialog: a titled stack of fields with focus
// traversal and per-field validation messages. Its lifecycle follows
// Closed -> Open -> Submitting -> Closed; the owner decides when those
// transitions happen.
type Form struct {
	title      string
	fields     []Field
	focus      int
	editing    bool
	submitting bool
}

// NewForm creates a dialog form. editing flags an edit dialog (the fields
// arrive pre-populated from the selected entity).
func NewForm(title string, editing bool, fields ...Field) *Form {
	f := &Form{title: title, fields: fields, editing: editing}
	f.focusField(0)
	return f
}

// Editing reports whether this is an edit dialog.
func (f *Form) Editing() bool { return f.editing }

// SetSubmitting flags an in-flight submission; input is ignored until the
// response code arrives.
func (f *Form) SetSubmitting(submitting bool) { f.submitting = submitting }

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.submitting }

func (f *Form) focusField(i int) {
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	if i < 0 {
		i = len(f.fields) - 1
	}
	if i >= len(f.fields) {
		i = 0
	}
	f.focus = i
	if f.fields[i].Kind == FieldKindText {
		f.fields[i].input.Focus()
	}
}

// Update handles input events, returns (cmd, submitted)
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool) {
	if f.submitting {
		return nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return nil, true
		case "tab", "down":
			f.focusField(f.focus + 1)
			return nil, false
		case "shift+tab", "up":
			f.focusField(f.focus - 1)
			return nil, false
		case "left", "right":
			field := &f.fields[f.focus]
			if field.Kind == FieldKindChoice {
				n := len(field.options)
				if keyMsg.String() == "right" {
					field.choice = (field.choice + 1) % n
				} else {
					field.choice = (field.choice + n - 1) % n
				}
				return nil, false
			}
		}
	}

	field := &f.fields[f.focus]
	if field.Kind != FieldKindText {
		return nil, false
	}
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return cmd, false
}

// Value returns a text field's current value.
func (f *Form) Value(name string) string {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return f.fields[i].input.Value()
		}
	}
	return ""
}

// Choice returns a choice field's selected option.
func (f *Form) Choice(name string) string {
	for i := range f.fields {
		if f.fields[i].Name == name && f.fields[i].Kind == FieldKindChoice {
			return f.fields[i].options[f.fields[i].choice]
		}
	}
	return ""
}

// SetFieldError attaches a message under the named field.
func (f *Form) SetFieldError(name, msg string) {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Err = msg
			return
		}
	}
}

// ClearErrors drops all field messages.
func (f *Form) ClearErrors() {
	for i := range f.fields {
		f.fields[i].Err = ""
	}
}

// ApplyValidation maps payload validation failures onto the fields.
// It reports whether the error carried field-level detail.
func (f *Form) ApplyValidation(err error) bool {
	fieldErrs, ok := err.(api.FieldErrors)
	if !ok {
		return false
	}
	for name, msg := range fieldErrs {
		f.SetFieldError(name, msg)
	}
	return true
}

// HasErrors reports whether any field carries a validation message.
func (f *Form) HasErrors() bool {
	for i := range f.fields {
		if f.fields[i].Err != "" {
			return true
		}
	}
	return false
}

// Reset restores every field to its initial value and refocuses the first.
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue(f.fields[i].initial)
		f.fields[i].choice = f.fields[i].initialChoice
		f.fields[i].Err = ""
	}
	f.submitting = false
	f.focusField(0)
}

// View renders the dialog box.
func (f *Form) View() string {
	const formWidth = 46

	labelStyle := styles.SubtitleStyle
	focusedLabel := styles.AccentStyle.Bold(true)

	rows := []string{styles.TitleStyle.Render(f.title), ""}
	for i := range f.fields {
		field := &f.fields[i]

		label := labelStyle.Render(field.Label)
		if i == f.focus {
			label = focusedLabel.Render(field.Label)
		}
		rows = append(rows, label)

		switch field.Kind {
		case FieldKindChoice:
			choice := field.options[field.choice]
			marker := "  " + choice
			if i == f.focus {
				marker = styles.HighlightStyle.Render("◀ " + choice + " ▶")
			}
			rows = append(rows, marker)
		default:
			rows = append(rows, field.input.View())
		}

		if field.Err != "" {
			rows = append(rows, styles.ErrorStyle.Render("  "+field.Err))
		}
	}

	rows = append(rows, "")
	hint := "enter guardar · tab campo · esc cancelar"
	if f.submitting {
		hint = "guardando..."
	}
	rows = append(rows, styles.DimStyle.Render(hint))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Indigo).
		Padding(1, 2).
		Width(formWidth).
		Render(content)
}
