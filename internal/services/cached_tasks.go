package services

import (
	"fmt"
	"time"

	"todo-app/backend/internal/cache"
	"todo-app/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const (
	taskCacheTTL     = 30 * time.Minute
	taskListCacheTTL = 15 * time.Minute
)

// CachedTaskService decorates a TaskService with read-through caching of
// single tasks and per-owner listings. Cache failures fall back to the
// database and are never surfaced to callers.
type CachedTaskService struct {
	taskService TaskService
	cache       cache.Cache
}

func NewCachedTaskService(taskService TaskService, cacheInstance cache.Cache) *CachedTaskService {
	return &CachedTaskService{
		taskService: taskService,
		cache:       cacheInstance,
	}
}

func taskKey(id uuid.UUID) string {
	return fmt.Sprintf("task:%s", id.String())
}

func ownerTasksKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("user_tasks:%s", ownerID.String())
}

func (s *CachedTaskService) CreateTask(db *gorm.DB, ownerID uuid.UUID, title, description string) (models.Task, error) {
	task, err := s.taskService.CreateTask(db, ownerID, title, description)
	if err != nil {
		return task, err
	}

	s.cache.Set(taskKey(task.ID), task, taskCacheTTL)
	s.cache.Delete(ownerTasksKey(ownerID))

	return task, nil
}

func (s *CachedTaskService) GetTasksByOwner(db *gorm.DB, ownerID uuid.UUID) ([]models.Task, error) {
	var cached []models.Task
	if err := s.cache.Get(ownerTasksKey(ownerID), &cached); err == nil {
		return cached, nil
	}

	tasks, err := s.taskService.GetTasksByOwner(db, ownerID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ownerTasksKey(ownerID), tasks, taskListCacheTTL)

	return tasks, nil
}

func (s *CachedTaskService) GetTaskByID(db *gorm.DB, id uuid.UUID) (models.Task, error) {
	var cached models.Task
	if err := s.cache.Get(taskKey(id), &cached); err == nil {
		return cached, nil
	}

	task, err := s.taskService.GetTaskByID(db, id)
	if err != nil {
		return task, err
	}

	s.cache.Set(taskKey(id), task, taskCacheTTL)

	return task, nil
}

func (s *CachedTaskService) GetTaskForOwner(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error) {
	// The ownership check applies on cache hits too.
	task, err := s.GetTaskByID(db, id)
	if err != nil {
		return models.Task{}, err
	}
	if task.UserID != callerID {
		return models.Task{}, ErrForbidden
	}
	return task, nil
}

func (s *CachedTaskService) UpdateTask(db *gorm.DB, callerID, id uuid.UUID, title, description string, completed bool) (models.Task, error) {
	task, err := s.taskService.UpdateTask(db, callerID, id, title, description, completed)
	if err != nil {
		return task, err
	}

	s.cache.Set(taskKey(id), task, taskCacheTTL)
	s.cache.Delete(ownerTasksKey(task.UserID))

	return task, nil
}

func (s *CachedTaskService) ToggleTask(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error) {
	task, err := s.taskService.ToggleTask(db, callerID, id)
	if err != nil {
		return task, err
	}

	s.cache.Set(taskKey(id), task, taskCacheTTL)
	s.cache.Delete(ownerTasksKey(task.UserID))

	return task, nil
}

func (s *CachedTaskService) DeleteTask(db *gorm.DB, callerID, id uuid.UUID) (models.Task, error) {
	task, err := s.taskService.DeleteTask(db, callerID, id)
	if err != nil {
		return task, err
	}

	s.cache.Delete(taskKey(id))
	s.cache.Delete(ownerTasksKey(task.UserID))

	return task, nil
}
