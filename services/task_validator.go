// services/task_validator.go - pure payload validation
package services

import (
	"strconv"
	"strings"

	"taskhub/models"
)

// TaskPayload is a candidate task supplied by a caller.
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

// One reason per validation rule; the first violated rule wins.
const (
	ReasonTitleMissing       = "title is required"
	ReasonTitleLength        = "title must be between 5 and 100 characters"
	ReasonDescriptionMissing = "description is required"
	ReasonDescriptionLength  = "description must be at most 1000 characters"
	ReasonStatusMissing      = "status is required"
	ReasonStatusInvalid      = "status must be either open or closed"
	ReasonDueDateMissing     = "due date is required"
	ReasonDueDateMalformed   = "due date must be a valid dd/mm/yyyy date"
)

// ValidateTask checks a full candidate payload rule by rule. It touches no
// storage and is safe to call before any store access.
func ValidateTask(p TaskPayload) error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return Validation(ReasonTitleMissing)
	}
	if l := len(title); l < 5 || l > 100 {
		return Validation(ReasonTitleLength)
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		return Validation(ReasonDescriptionMissing)
	}
	if len(description) > 1000 {
		return Validation(ReasonDescriptionLength)
	}
	if strings.TrimSpace(p.Status) == "" {
		return Validation(ReasonStatusMissing)
	}
	if !models.TaskStatus(p.Status).Valid() {
		return Validation(ReasonStatusInvalid)
	}
	if strings.TrimSpace(p.DueDate) == "" {
		return Validation(ReasonDueDateMissing)
	}
	if !validDueDate(p.DueDate) {
		return Validation(ReasonDueDateMalformed)
	}
	return nil
}

// ValidateTaskUpdate applies the same rules to the fields present in a
// partial payload. An empty field means "leave the stored value unchanged"
// and is skipped here.
func ValidateTaskUpdate(p TaskPayload) error {
	if title := strings.TrimSpace(p.Title); title != "" {
		if l := len(title); l < 5 || l > 100 {
			return Validation(ReasonTitleLength)
		}
	}
	if description := strings.TrimSpace(p.Description); description != "" {
		if len(description) > 1000 {
			return Validation(ReasonDescriptionLength)
		}
	}
	if p.Status != "" && !models.TaskStatus(p.Status).Valid() {
		return Validation(ReasonStatusInvalid)
	}
	if p.DueDate != "" && !validDueDate(p.DueDate) {
		return Validation(ReasonDueDateMalformed)
	}
	return nil
}

// validDueDate accepts dd/mm/yyyy with day 1-31 and month 1-12. The day is
// deliberately not cross-checked against the month.
func validDueDate(s string) bool {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return false
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return false
	}
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}
