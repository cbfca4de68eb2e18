// services/task_service.go - task lifecycle business logic
package services

import (
	"errors"
	"strings"
	"time"

	"taskhub/models"
	"taskhub/notify"
	"taskhub/store"
)

type TaskService struct {
	tasks      store.TaskStore
	users      store.UserStore
	dispatcher *notify.Dispatcher
}

func NewTaskService(tasks store.TaskStore, users store.UserStore, dispatcher *notify.Dispatcher) *TaskService {
	return &TaskService{tasks: tasks, users: users, dispatcher: dispatcher}
}

// ================== TASK CRUD OPERATIONS ==================

// Create validates the payload and persists a new task with no assignee
// and no comments. Status must be supplied; there is no default.
func (s *TaskService) Create(p TaskPayload) (*models.Task, error) {
	if err := ValidateTask(p); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       p.Title,
		Description: p.Description,
		Status:      models.TaskStatus(p.Status),
		DueDate:     p.DueDate,
	}

	if err := s.tasks.Create(task); err != nil {
		return nil, taskStoreError(err)
	}
	return task, nil
}

func (s *TaskService) Get(id uint) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, taskStoreError(err)
	}
	return task, nil
}

// List returns all tasks, optionally restricted to one status. A result
// set of zero tasks is reported as NoResults, not as an empty list.
func (s *TaskService) List(status string) ([]models.Task, error) {
	var filter *models.TaskStatus
	if status != "" {
		st := models.TaskStatus(status)
		if !st.Valid() {
			return nil, BadRequest(ReasonStatusInvalid)
		}
		filter = &st
	}

	tasks, err := s.tasks.List(filter)
	if err != nil {
		return nil, Internal("failed to list tasks", err)
	}
	if len(tasks) == 0 {
		return nil, NoResults("no tasks found")
	}
	return tasks, nil
}

// Search matches a case-insensitive substring against title or description.
func (s *TaskService) Search(text string) ([]models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, BadRequest("search text is required")
	}

	tasks, err := s.tasks.Search(text)
	if err != nil {
		return nil, Internal("failed to search tasks", err)
	}
	if len(tasks) == 0 {
		return nil, NoResults("no tasks matched the search")
	}
	return tasks, nil
}

func (s *TaskService) ListAssignedTo(userID uint) ([]models.Task, error) {
	tasks, err := s.tasks.ListByAssignee(userID)
	if err != nil {
		return nil, Internal("failed to list assigned tasks", err)
	}
	return tasks, nil
}

func (s *TaskService) ListAssignedToSelf(identity models.Identity) ([]models.Task, error) {
	return s.ListAssignedTo(identity.ID)
}

// Update overwrites the fields present in the payload. An empty field
// leaves the stored value unchanged; there is no way to clear a field.
// If the task has an assignee afterwards they are notified, and delivery
// never affects the result.
func (s *TaskService) Update(id uint, p TaskPayload) (*models.Task, error) {
	if err := ValidateTaskUpdate(p); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, taskStoreError(err)
	}

	if strings.TrimSpace(p.Title) != "" {
		task.Title = p.Title
	}
	if strings.TrimSpace(p.Description) != "" {
		task.Description = p.Description
	}
	if p.Status != "" {
		task.Status = models.TaskStatus(p.Status)
	}
	if p.DueDate != "" {
		task.DueDate = p.DueDate
	}

	if err := s.tasks.Save(task); err != nil {
		return nil, taskStoreError(err)
	}

	if task.AssigneeID != nil {
		if assignee, err := s.users.GetByID(*task.AssigneeID); err == nil {
			s.dispatcher.Notify(notify.EventUpdated, task, assignee)
		}
	}
	return task, nil
}

// Delete removes the task and its comments and returns the removed record.
func (s *TaskService) Delete(id uint) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, taskStoreError(err)
	}
	if err := s.tasks.Delete(id); err != nil {
		return nil, taskStoreError(err)
	}
	return task, nil
}

// ================== TASK TRANSITIONS ==================

// Assign sets the task's assignee and notifies them. The assignee must be
// a registered user.
func (s *TaskService) Assign(id, assigneeID uint) (*models.Task, error) {
	assignee, err := s.users.GetByID(assigneeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, BadRequest("user not found")
		}
		return nil, Internal("failed to look up user", err)
	}

	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, taskStoreError(err)
	}

	task.AssigneeID = &assignee.ID
	if err := s.tasks.UpdateFields(task.ID, map[string]interface{}{"assignee_id": assignee.ID}); err != nil {
		return nil, taskStoreError(err)
	}

	s.dispatcher.Notify(notify.EventAssigned, task, assignee)
	return task, nil
}

// Complete closes the task. Completing an already closed task is not an
// error.
func (s *TaskService) Complete(id uint) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, taskStoreError(err)
	}

	task.Status = models.TaskStatusClosed
	if err := s.tasks.UpdateFields(task.ID, map[string]interface{}{"status": models.TaskStatusClosed}); err != nil {
		return nil, taskStoreError(err)
	}
	return task, nil
}

// AddComment appends a comment authored by the caller. Comments cannot be
// edited or removed afterwards.
func (s *TaskService) AddComment(taskID uint, identity models.Identity, text string) (*models.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, BadRequest("comment text is required")
	}
	if len(trimmed) > 1000 {
		return nil, BadRequest("comment text must be at most 1000 characters")
	}

	task, err := s.tasks.GetByID(taskID)
	if err != nil {
		return nil, taskStoreError(err)
	}

	comment := &models.Comment{
		TaskID:    task.ID,
		AuthorID:  identity.ID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.tasks.AddComment(comment); err != nil {
		return nil, taskStoreError(err)
	}

	return s.Get(task.ID)
}

// taskStoreError maps store sentinels onto the error taxonomy.
func taskStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound("task not found")
	case errors.Is(err, store.ErrDuplicate):
		return Duplicate("a task with this title already exists")
	default:
		return Internal("task storage failure", err)
	}
}
