package dto

import (
	"time"

	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// TaskRequest entrada para crear o actualizar una tarea.
type TaskRequest struct {
	CaseID      string     `json:"case_id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  string     `json:"assigned_to"`
}

// MoveTaskRequest transición de columna en el tablero kanban.
type MoveTaskRequest struct {
	Status string `json:"status" validate:"required,oneof=todo in_progress done"`
}

// BoardColumn columna del tablero.
type BoardColumn struct {
	Status string        `json:"status"`
	Tasks  []entity.Task `json:"tasks"`
}

// TaskBoardResponse tablero kanban de tareas.
type TaskBoardResponse struct {
	Columns     []BoardColumn `json:"columns"`
	Overdue     int           `json:"overdue"`
	Offline     bool          `json:"offline"`
	Warning     string        `json:"warning,omitempty"`
	WarningCode string        `json:"warning_code,omitempty"`
}
