package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/repository"
	"bananalearn_backend/internal/util"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	sessionCodeKeyPrefix = "session:code:"
	sessionCodeTTL       = 2 * time.Hour
	sessionCodeAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	sessionCodeLength    = 6
)

// SessionService runs Kahoot-style live quiz sessions. Join codes live in
// Redis with a TTL; everything else is rows. Clients learn about state
// changes by polling the status endpoint.
type SessionService struct {
	SessionRepo  *repository.SessionRepository
	QuizRepo     *repository.QuizRepository
	UserRepo     *repository.UserRepository
	Gamification *GamificationService
	Redis        *redis.Client
}

func NewSessionService(
	sessionRepo *repository.SessionRepository,
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	gamification *GamificationService,
	rdb *redis.Client,
) *SessionService {
	return &SessionService{
		SessionRepo:  sessionRepo,
		QuizRepo:     quizRepo,
		UserRepo:     userRepo,
		Gamification: gamification,
		Redis:        rdb,
	}
}

// AnswerPoints scores a single answer: zero for a wrong option, full
// question points inside the time limit, half beyond it.
func AnswerPoints(question model.QuizQuestion, option, elapsedSec int) int {
	if option != question.Correct {
		return 0
	}
	if elapsedSec > question.TimeLimitSec {
		return question.Points / 2
	}
	return question.Points
}

func generateJoinCode() (string, error) {
	code := make([]byte, sessionCodeLength)
	max := big.NewInt(int64(len(sessionCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = sessionCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// StartSession opens a lobby for a quiz and registers its join code.
func (s *SessionService) StartSession(ctx context.Context, hostID, quizID uint) (*model.LiveSession, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	code, err := generateJoinCode()
	if err != nil {
		return nil, err
	}

	session := &model.LiveSession{
		QuizID: quiz.ID,
		HostID: hostID,
		Code:   code,
		Status: model.SessionLobby,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}

	err = s.Redis.Set(ctx, sessionCodeKeyPrefix+code, session.ID, sessionCodeTTL).Err()
	if err != nil {
		return nil, err
	}

	return session, nil
}

// JoinByCode resolves a join code to its session while the lobby is open.
func (s *SessionService) JoinByCode(ctx context.Context, code string) (*model.LiveSession, error) {
	val, err := s.Redis.Get(ctx, sessionCodeKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	sessionID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt join code mapping: %w", err)
	}

	session, err := s.SessionRepo.FindByID(uint(sessionID))
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionFinished {
		return nil, util.ErrSessionNotJoinable
	}

	return session, nil
}

// SessionStatus is what polling clients consume.
type SessionStatus struct {
	Session    *model.LiveSession        `json:"session"`
	Scoreboard []repository.SessionScore `json:"scoreboard"`
}

func (s *SessionService) GetStatus(sessionID uint) (*SessionStatus, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	scoreboard, err := s.SessionRepo.TopScores(sessionID, 10)
	if err != nil {
		return nil, err
	}
	if scoreboard == nil {
		scoreboard = []repository.SessionScore{}
	}

	return &SessionStatus{Session: session, Scoreboard: scoreboard}, nil
}

// SubmitAnswer scores one answer, credits the bananes and runs the
// evaluator. One answer per participant per question.
func (s *SessionService) SubmitAnswer(userID, sessionID uint, option, elapsedSec int) (int, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, util.ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	if session.Status != model.SessionQuestion {
		return 0, util.ErrSessionNotActive
	}

	quiz, err := s.QuizRepo.FindByID(session.QuizID)
	if err != nil {
		return 0, err
	}
	if session.CurrentQuestion >= len(quiz.Questions) {
		return 0, util.ErrSessionNotActive
	}
	question := quiz.Questions[session.CurrentQuestion]

	answered, err := s.SessionRepo.HasAnswered(sessionID, userID, session.CurrentQuestion)
	if err != nil {
		return 0, err
	}
	if answered {
		return 0, util.ErrAlreadyAnswered
	}

	points := AnswerPoints(question, option, elapsedSec)

	err = s.SessionRepo.CreateAnswer(&model.SessionAnswer{
		SessionID:     sessionID,
		UserID:        userID,
		QuestionOrder: session.CurrentQuestion,
		Option:        option,
		ElapsedSec:    elapsedSec,
		Points:        points,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, util.ErrAlreadyAnswered
		}
		return 0, err
	}

	if points > 0 {
		if err := s.UserRepo.AddXP(userID, points); err != nil {
			return 0, err
		}
	}

	// Answering in a live session counts as activity even when wrong.
	s.Gamification.RecordActivity(userID, time.Now(), true)

	return points, nil
}

// Advance moves the session to the next question, or to finished when the
// quiz is exhausted. Host only.
func (s *SessionService) Advance(hostID, sessionID uint) (*model.LiveSession, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.HostID != hostID {
		return nil, util.ErrPermissionDenied
	}
	if session.Status == model.SessionFinished {
		return session, nil
	}

	quiz, err := s.QuizRepo.FindByID(session.QuizID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case model.SessionLobby:
		session.Status = model.SessionQuestion
		session.CurrentQuestion = 0
	case model.SessionQuestion:
		if session.CurrentQuestion+1 >= len(quiz.Questions) {
			session.Status = model.SessionFinished
		} else {
			session.CurrentQuestion++
		}
	}

	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}

	return session, nil
}

// Finish closes the session and drops its join code. Host only.
func (s *SessionService) Finish(ctx context.Context, hostID, sessionID uint) (*model.LiveSession, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.HostID != hostID {
		return nil, util.ErrPermissionDenied
	}

	session.Status = model.SessionFinished
	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}

	s.Redis.Del(ctx, sessionCodeKeyPrefix+session.Code)

	return session, nil
}
