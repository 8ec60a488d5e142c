package domain

// DeliverableStatus is the delivery state of a deliverable.
type DeliverableStatus string

const (
	DeliverablePending DeliverableStatus = "Pendiente"
	DeliverableSent    DeliverableStatus = "Enviado"
)

// DeliverableStatuses lists the accepted status values, in display order.
func DeliverableStatuses() []DeliverableStatus {
	return []DeliverableStatus{DeliverablePending, DeliverableSent}
}

// Valid reports whether the status is one of the enumerated values.
func (s DeliverableStatus) Valid() bool {
	return s == DeliverablePending || s == DeliverableSent
}

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskIncomplete TaskStatus = "Incompleta"
	TaskCompleted  TaskStatus = "Completada"
)

// TaskStatuses lists the accepted task status values, in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskIncomplete, TaskCompleted}
}

// Valid reports whether the status is one of the enumerated values.
func (s TaskStatus) Valid() bool {
	return s == TaskIncomplete || s == TaskCompleted
}

// SessionType distinguishes study timers from rest timers.
type SessionType string

const (
	SessionStudy   SessionType = "Estudio"
	SessionResting SessionType = "Descanso"
)

// SessionTypes lists the accepted session types, in display order.
func SessionTypes() []SessionType {
	return []SessionType{SessionStudy, SessionResting}
}

// Valid reports whether the type is one of the enumerated values.
func (t SessionType) Valid() bool {
	return t == SessionStudy || t == SessionResting
}
