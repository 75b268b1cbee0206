package entity

import "time"

// Columnas del tablero kanban, en orden de visualización.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// TaskStatuses columnas del tablero en orden.
var TaskStatuses = []string{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// Prioridades de tarea.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task representa una tarea operativa (preparación, traslado, trámite) de un caso.
type Task struct {
	Base
	CaseID      string     `json:"case_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	AssignedTo  string     `json:"assigned_to"`
}

// WithBase implementa Record.
func (t Task) WithBase(b Base) Task {
	t.Base = b
	return t
}

// ValidTaskStatus informa si s es una columna del tablero.
func ValidTaskStatus(s string) bool {
	for _, st := range TaskStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// ValidPriority informa si p es una prioridad conocida.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
