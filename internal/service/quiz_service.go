package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// QuizStore is the persistence surface the quiz service needs.
type QuizStore interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByAuthor(authorID uint) ([]model.Quiz, error)
	ReplaceQuestions(quizID uint, title string, questions []model.QuizQuestion) error
	Delete(id uint) error
}

type QuizService struct {
	QuizRepo QuizStore
}

func NewQuizService(quizRepo QuizStore) *QuizService {
	return &QuizService{QuizRepo: quizRepo}
}

// QuestionRequest is one question of a teacher's quiz payload.
type QuestionRequest struct {
	Text         string `json:"text" binding:"required"`
	OptionA      string `json:"optionA" binding:"required"`
	OptionB      string `json:"optionB" binding:"required"`
	OptionC      string `json:"optionC"`
	OptionD      string `json:"optionD"`
	Correct      int    `json:"correct" binding:"min=0,max=3"`
	Points       int    `json:"points"`
	TimeLimitSec int    `json:"timeLimitSec"`
}

type QuizRequest struct {
	Title     string            `json:"title" binding:"required"`
	Questions []QuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *QuizService) ListByAuthor(authorID uint) ([]model.Quiz, error) {
	return s.QuizRepo.FindByAuthor(authorID)
}

func (s *QuizService) CreateQuiz(authorID uint, req QuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{
		Title:     req.Title,
		AuthorID:  authorID,
		Questions: buildQuestions(req.Questions),
	}

	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}

	return quiz, nil
}

func (s *QuizService) UpdateQuiz(authorID, quizID uint, req QuizRequest, isAdmin bool) (*model.Quiz, error) {
	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if quiz.AuthorID != authorID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}

	// Replace the question set wholesale; partial edits are not supported.
	// The quiz row keeps its ID.
	questions := buildQuestions(req.Questions)
	if err := s.QuizRepo.ReplaceQuestions(quiz.ID, req.Title, questions); err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Questions = questions
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(authorID, quizID uint, isAdmin bool) error {
	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return err
	}
	if quiz.AuthorID != authorID && !isAdmin {
		return util.ErrPermissionDenied
	}

	return s.QuizRepo.Delete(quizID)
}

func buildQuestions(reqs []QuestionRequest) []model.QuizQuestion {
	questions := make([]model.QuizQuestion, len(reqs))
	for i, q := range reqs {
		points := q.Points
		if points <= 0 {
			points = 100
		}
		timeLimit := q.TimeLimitSec
		if timeLimit <= 0 {
			timeLimit = 30
		}
		questions[i] = model.QuizQuestion{
			Order:        i,
			Text:         q.Text,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			Correct:      q.Correct,
			Points:       points,
			TimeLimitSec: timeLimit,
		}
	}
	return questions
}
