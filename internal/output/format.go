// Package output renders tasks and dispatcher messages as text lines.
package output

import (
	"fmt"
	"io"
	"iter"

	"todo/internal/domain"
)

// Fixed dispatcher messages.
const (
	Banner           = "=== TODO APP (add/list/done/quit) ==="
	NoTasks          = "No tasks yet!"
	EmptyDescription = "Please enter a task after 'add'"
	InvalidID        = "Invalid ID — use a number"
	UnknownCommand   = "Unknown command. Try: add [task] / list / done [id] / quit"
	Farewell         = "Goodbye!"
)

// FormatTask formats a task line.
// Format: "{ID} {MARKER} {DESCRIPTION}" where MARKER is "[x]" or "[ ]".
func FormatTask(task domain.Task) string {
	return fmt.Sprintf("%d %s %s", task.ID, task.Marker(), task.Description)
}

// WriteTasks writes one line per task in sequence order, or NoTasks when the
// sequence is empty. It returns the number of tasks written and stops at the
// first sequence error.
func WriteTasks(w io.Writer, tasks iter.Seq2[domain.Task, error]) (int, error) {
	n := 0
	for task, err := range tasks {
		if err != nil {
			return n, err
		}
		if _, err := fmt.Fprintln(w, FormatTask(task)); err != nil {
			return n, err
		}
		n++
	}
	if n == 0 {
		if _, err := fmt.Fprintln(w, NoTasks); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Added is the confirmation for a stored task
func Added(id uint64) string {
	return fmt.Sprintf("Added task #%d", id)
}

// Completed is the confirmation for a completed task
func Completed(id uint64) string {
	return fmt.Sprintf("Marked task #%d as done!", id)
}

// NotFound is the message for a done command naming an unknown id
func NotFound(id uint64) string {
	return fmt.Sprintf("Task #%d not found.", id)
}
