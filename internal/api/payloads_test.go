package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/studia/internal/domain"
)

func validDeliverable() DeliverablePayload {
	return DeliverablePayload{
		Name:        "Trabajo práctico 1",
		Description: "Primera entrega del cuatrimestre",
		Deadline:    time.Date(2026, 6, 1, 23, 59, 0, 0, time.UTC),
		Status:      domain.DeliverablePending,
		Note:        0,
		Percent:     20,
		CourseID:    "c1",
	}
}

func TestValidateDeliverable(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, Validate(validDeliverable()))
	})

	t.Run("zero note and percent are legal", func(t *testing.T) {
		p := validDeliverable()
		p.Note = 0
		p.Percent = 0
		assert.NoError(t, Validate(p))
	})

	t.Run("boundary values pass", func(t *testing.T) {
		p := validDeliverable()
		p.Note = 100
		p.Percent = 100
		assert.NoError(t, Validate(p))
	})

	t.Run("note out of range", func(t *testing.T) {
		p := validDeliverable()
		p.Note = 101
		err := Validate(p)
		require.Error(t, err)
		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		assert.Contains(t, fieldErrs, "note")
	})

	t.Run("negative percent", func(t *testing.T) {
		p := validDeliverable()
		p.Percent = -1
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.(FieldErrors), "percent")
	})

	t.Run("status outside the catalog", func(t *testing.T) {
		p := validDeliverable()
		p.Status = "Perdido"
		err := Validate(p)
		require.Error(t, err)
		assert.Equal(t, "valor fuera del catálogo", err.(FieldErrors)["status"])
	})

	t.Run("short name reported under json key", func(t *testing.T) {
		p := validDeliverable()
		p.Name = "TP"
		err := Validate(p)
		require.Error(t, err)
		assert.Equal(t, "use al menos 5 caracteres", err.(FieldErrors)["name"])
	})

	t.Run("missing deadline", func(t *testing.T) {
		p := validDeliverable()
		p.Deadline = time.Time{}
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.(FieldErrors), "deadline")
	})
}

func TestValidateTask(t *testing.T) {
	valid := TaskPayload{
		Name:          "Leer paper",
		Description:   "Leer el paper asignado en clase",
		Status:        domain.TaskIncomplete,
		DeliverableID: "d1",
	}
	assert.NoError(t, Validate(valid))

	short := valid
	short.Description = "corta"
	err := Validate(short)
	require.Error(t, err)
	assert.Equal(t, "use al menos 10 caracteres", err.(FieldErrors)["description"])
}

func TestValidateSession(t *testing.T) {
	valid := SessionPayload{Name: "Pomodoro", Type: domain.SessionStudy, Duration: 25}
	assert.NoError(t, Validate(valid))

	zero := valid
	zero.Duration = 0
	err := Validate(zero)
	require.Error(t, err)
	assert.Contains(t, err.(FieldErrors), "duration")
}

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, Validate(Credentials{Email: "ana@uni.edu", Password: "secreto"}))

	err := Validate(Credentials{Email: "no-es-correo", Password: "secreto"})
	require.Error(t, err)
	assert.Contains(t, err.(FieldErrors), "email")
}
