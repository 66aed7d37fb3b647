package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CourseStore is the persistence surface the course service needs.
type CourseStore interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindPublished() ([]model.Course, error)
	FindByAuthor(authorID uint) ([]model.Course, error)
	Update(course *model.Course) error
	Delete(id uint) error
}

type CourseService struct {
	CourseRepo   CourseStore
	ProgressRepo ProgressStore
	UserRepo     UserStore
	Gamification *GamificationService
}

func NewCourseService(
	courseRepo CourseStore,
	progressRepo ProgressStore,
	userRepo UserStore,
	gamification *GamificationService,
) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		Gamification: gamification,
	}
}

// CourseRequest carries the teacher create/update payload.
type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	XPReward    int    `json:"xpReward" binding:"required,min=1"`
	Published   bool   `json:"published"`
}

// CompletionResult is the payload of POST /api/courses/:id/complete.
type CompletionResult struct {
	Success  bool `json:"success"`
	XPGained int  `json:"xpGained"`
	TotalXP  int  `json:"totalXp"`
}

func (s *CourseService) ListPublished() ([]model.Course, error) {
	return s.CourseRepo.FindPublished()
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// CompleteCourse records the completion, credits the reward and then runs
// the gamification evaluator. The completion and the XP credit are the
// primary mutation; the evaluator is best effort on top of them.
func (s *CourseService) CompleteCourse(userID, courseID uint) (*CompletionResult, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if !course.Published {
		return nil, util.ErrCourseNotPublished
	}

	done, err := s.ProgressRepo.Exists(userID, courseID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, util.ErrCourseCompleted
	}

	now := time.Now()
	err = s.ProgressRepo.Create(&model.UserProgress{
		UserID:      userID,
		CourseID:    courseID,
		CompletedAt: now,
	})
	if err != nil {
		// The unique index catches a double submission that raced the
		// Exists check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrCourseCompleted
		}
		return nil, err
	}

	if err := s.UserRepo.AddXP(userID, course.XPReward); err != nil {
		return nil, err
	}

	s.Gamification.RecordActivity(userID, now, true)

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &CompletionResult{
		Success:  true,
		XPGained: course.XPReward,
		TotalXP:  user.XP,
	}, nil
}

func (s *CourseService) ListByAuthor(authorID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByAuthor(authorID)
}

func (s *CourseService) CreateCourse(authorID uint, req CourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		XPReward:    req.XPReward,
		Published:   req.Published,
		AuthorID:    authorID,
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *CourseService) UpdateCourse(authorID, courseID uint, req CourseRequest, isAdmin bool) (*model.Course, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if course.AuthorID != authorID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}

	course.Title = req.Title
	course.Description = req.Description
	course.XPReward = req.XPReward
	course.Published = req.Published

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *CourseService) DeleteCourse(authorID, courseID uint, isAdmin bool) error {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return err
	}
	if course.AuthorID != authorID && !isAdmin {
		return util.ErrPermissionDenied
	}

	return s.CourseRepo.Delete(courseID)
}
