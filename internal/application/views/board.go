package views

import (
	"time"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// Board agrupa las tareas en las columnas del tablero, en el orden de la instantánea.
// Las tareas con estado desconocido van a la primera columna.
func Board(items []entity.Task, now time.Time) dto.TaskBoardResponse {
	cols := make([]dto.BoardColumn, len(entity.TaskStatuses))
	index := make(map[string]int, len(entity.TaskStatuses))
	for i, st := range entity.TaskStatuses {
		cols[i] = dto.BoardColumn{Status: st, Tasks: []entity.Task{}}
		index[st] = i
	}
	var overdue int
	for _, t := range items {
		i, ok := index[t.Status]
		if !ok {
			i = 0
		}
		cols[i].Tasks = append(cols[i].Tasks, t)
		if t.Status != entity.TaskStatusDone && t.DueDate != nil && t.DueDate.Before(now) {
			overdue++
		}
	}
	return dto.TaskBoardResponse{Columns: cols, Overdue: overdue}
}
