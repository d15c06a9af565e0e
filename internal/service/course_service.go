package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"courses-api/internal/cache"
	"courses-api/internal/entities"
	"courses-api/internal/models"
	"courses-api/internal/repository"
)

var (
	// ErrCourseNotFound is returned when the target course does not exist
	ErrCourseNotFound = errors.New("course not found")
	// ErrNotCourseOwner is returned when an authenticated user tries to
	// mutate a course they do not own
	ErrNotCourseOwner = errors.New("not the course owner")
)

const courseCacheTTL = 5 * time.Minute

// CourseService defines the interface for course business logic
type CourseService interface {
	// ListCourses returns all courses, or the courses matching id when it is
	// set. An unmatched id yields an empty list, never an error.
	ListCourses(id *int64) (*models.CourseListResponse, error)
	// CreateCourse validates the request and creates a course owned by
	// ownerID, ignoring any owner information in the request.
	CreateCourse(req *models.SaveCourseRequest, ownerID int64) (*entities.Course, error)
	// UpdateCourse merges the provided fields into the stored course,
	// re-validates, and persists. Only the owner may update.
	UpdateCourse(id int64, req *models.SaveCourseRequest, principalID int64) error
	// DeleteCourse removes a course. Only the owner may delete.
	DeleteCourse(id int64, principalID int64) error
}

type courseService struct {
	repo  repository.CourseRepository
	cache cache.Cache
	ctx   context.Context
}

// NewCourseService creates a new course service. cacheClient may be nil to
// run without caching.
func NewCourseService(repo repository.CourseRepository, cacheClient cache.Cache) CourseService {
	return &courseService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
	}
}

func courseCacheKey(id *int64) string {
	if id == nil {
		return "courses:all"
	}
	return fmt.Sprintf("courses:%d", *id)
}

// ListCourses retrieves courses with their owners, read-through cached
func (s *courseService) ListCourses(id *int64) (*models.CourseListResponse, error) {
	key := courseCacheKey(id)

	if s.cache != nil {
		var cached models.CourseListResponse
		if err := s.cache.GetJSON(s.ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	courses, err := s.repo.FindAll(id)
	if err != nil {
		return nil, err
	}

	response := &models.CourseListResponse{Courses: make([]*models.CourseResponse, 0, len(courses))}
	for _, course := range courses {
		response.Courses = append(response.Courses, models.NewCourseResponse(course))
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, key, response, courseCacheTTL); err != nil {
			log.Printf("Warning: failed to cache %s: %v", key, err)
		}
	}

	return response, nil
}

// CreateCourse creates a new course owned by ownerID
func (s *courseService) CreateCourse(req *models.SaveCourseRequest, ownerID int64) (*entities.Course, error) {
	if violations := validateCourse(req.Title, req.Description); violations != nil {
		return nil, violations
	}

	course, err := s.repo.Create(&entities.Course{
		Title:           *req.Title,
		Description:     *req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          ownerID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(course.ID)
	return course, nil
}

// UpdateCourse updates a course after the ownership check passes
func (s *courseService) UpdateCourse(id int64, req *models.SaveCourseRequest, principalID int64) error {
	course, err := s.findOwned(id, principalID)
	if err != nil {
		return err
	}

	// Fields absent from the request keep their stored values; the merged
	// record is validated as a whole before persisting
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.EstimatedTime != nil {
		course.EstimatedTime = req.EstimatedTime
	}
	if req.MaterialsNeeded != nil {
		course.MaterialsNeeded = req.MaterialsNeeded
	}

	if violations := validateCourse(&course.Title, &course.Description); violations != nil {
		return violations
	}

	if err := s.repo.Update(course); err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

// DeleteCourse deletes a course after the ownership check passes
func (s *courseService) DeleteCourse(id int64, principalID int64) error {
	if _, err := s.findOwned(id, principalID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	s.invalidate(id)
	return nil
}

// findOwned loads the course and enforces that principalID owns it
func (s *courseService) findOwned(id int64, principalID int64) (*entities.Course, error) {
	course, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if course.UserID != principalID {
		return nil, ErrNotCourseOwner
	}

	return course, nil
}

// invalidate drops the cached list and the cached single-course entry
func (s *courseService) invalidate(id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(s.ctx, "courses:all", fmt.Sprintf("courses:%d", id)); err != nil {
		log.Printf("Warning: failed to invalidate course cache: %v", err)
	}
}
