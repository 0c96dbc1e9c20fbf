package services

import (
	"errors"
	"strings"
	"time"

	"todo-app/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyTitle = errors.New("title is required")
	ErrForbidden  = errors.New("task belongs to another user")
)

type TaskService interface {
	CreateTask(db *gorm.DB, ownerID uuid.UUID, title, description string) (models.Task, error)
	GetTasksByOwner(db *gorm.DB, ownerID uuid.UUID) ([]models.Task, error)
	GetTaskByID(db *gorm.DB, id uuid.UUID) (models.Task, error)
	GetTaskForOwner(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error)
	UpdateTask(db *gorm.DB, callerID, id uuid.UUID, title, description string, completed bool) (models.Task, error)
	ToggleTask(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error)
	DeleteTask(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error)
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, ownerID uuid.UUID, title, description string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	now := time.Now()
	task := models.Task{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskServiceImpl) GetTasksByOwner(db *gorm.DB, ownerID uuid.UUID) ([]models.Task, error) {
	tasks := []models.Task{}
	err := db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetTaskByID(db *gorm.DB, id uuid.UUID) (models.Task, error) {
	var task models.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskServiceImpl) GetTaskForOwner(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error) {
	task, err := s.GetTaskByID(db, id)
	if err != nil {
		return models.Task{}, err
	}
	if task.UserID != callerID {
		return models.Task{}, ErrForbidden
	}
	return task, nil
}

// UpdateTask replaces the three mutable fields. A rejected update (empty
// title, missing row, foreign owner) never touches the stored row.
func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, callerID, id uuid.UUID, title, description string, completed bool) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	task, err := s.GetTaskForOwner(db, callerID, id)
	if err != nil {
		return models.Task{}, err
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
		"completed":   completed,
		"updated_at":  time.Now(),
	}
	if err := db.Model(&task).Updates(updates).Error; err != nil {
		return models.Task{}, err
	}
	return s.GetTaskByID(db, id)
}

// ToggleTask flips completed against the stored value in a single statement,
// so two concurrent toggles cannot lose an update.
func (s *TaskServiceImpl) ToggleTask(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error) {
	if _, err := s.GetTaskForOwner(db, callerID, id); err != nil {
		return models.Task{}, err
	}

	result := db.Model(&models.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"completed":  gorm.Expr("NOT completed"),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return models.Task{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Task{}, gorm.ErrRecordNotFound
	}
	return s.GetTaskByID(db, id)
}

// DeleteTask removes the row and returns its prior state for confirmation.
func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error) {
	task, err := s.GetTaskForOwner(db, callerID, id)
	if err != nil {
		return models.Task{}, err
	}

	if err := db.Delete(&models.Task{}, "id = ?", id).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}
