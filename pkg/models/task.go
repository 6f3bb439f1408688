package model

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is the core entity. The repository owns id, completion state and
// all timestamps; callers only ever supply the TaskFormData subset.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	Notes       *string    `json:"notes"`
	Priority    *Priority  `json:"priority"`
	Tags        []string   `json:"tags"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// Clone returns a deep copy, so snapshots handed out by the repository
// cannot be mutated behind its back.
func (t Task) Clone() Task {
	out := t
	if t.Notes != nil {
		v := *t.Notes
		out.Notes = &v
	}
	if t.Priority != nil {
		v := *t.Priority
		out.Priority = &v
	}
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		out.CompletedAt = &v
	}
	if t.UpdatedAt != nil {
		v := *t.UpdatedAt
		out.UpdatedAt = &v
	}
	return out
}

// TaskFormData is the writable projection of Task accepted from input.
type TaskFormData struct {
	Title    string    `json:"title"`
	Notes    string    `json:"notes"`
	Priority *Priority `json:"priority"`
	Tags     []string  `json:"tags"`
	Date     string    `json:"date"`
}

// TaskPatch is a partial update of the writable fields. A nil field is
// left untouched; a present field is rewritten. Setting Priority to the
// empty string clears it.
type TaskPatch struct {
	Title    *string   `json:"title"`
	Notes    *string   `json:"notes"`
	Priority *Priority `json:"priority"`
	Tags     *[]string `json:"tags"`
	Date     *string   `json:"date"`
}

// Apply returns a copy of t with the patch applied and UpdatedAt set.
func (p TaskPatch) Apply(t Task, now time.Time) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = strings.TrimSpace(*p.Title)
	}
	if p.Notes != nil {
		out.Notes = NormalizeNotes(*p.Notes)
	}
	if p.Priority != nil {
		if *p.Priority == "" {
			out.Priority = nil
		} else {
			v := *p.Priority
			out.Priority = &v
		}
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	out.UpdatedAt = &now
	return out
}

// NormalizeNotes trims the input and maps empty notes to absent.
func NormalizeNotes(notes string) *string {
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
