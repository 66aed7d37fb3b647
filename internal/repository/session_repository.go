package repository

import (
	"bananalearn_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.LiveSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.LiveSession, error) {
	var session model.LiveSession
	err := r.DB.First(&session, id).Error
	return &session, err
}

func (r *SessionRepository) Update(session *model.LiveSession) error {
	return r.DB.Save(session).Error
}

func (r *SessionRepository) CreateAnswer(answer *model.SessionAnswer) error {
	return r.DB.Create(answer).Error
}

func (r *SessionRepository) HasAnswered(sessionID, userID uint, questionOrder int) (bool, error) {
	var answer model.SessionAnswer
	err := r.DB.Where("session_id = ? AND user_id = ? AND question_order = ?",
		sessionID, userID, questionOrder).First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SessionScore is one participant's running total within a session.
type SessionScore struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// TopScores returns the session scoreboard, best first.
func (r *SessionRepository) TopScores(sessionID uint, limit int) ([]SessionScore, error) {
	var scores []SessionScore
	err := r.DB.Model(&model.SessionAnswer{}).
		Select("session_answers.user_id, users.name, SUM(session_answers.points) as points").
		Joins("JOIN users ON users.id = session_answers.user_id").
		Where("session_answers.session_id = ?", sessionID).
		Group("session_answers.user_id, users.name").
		Order("points DESC").
		Limit(limit).
		Scan(&scores).Error
	return scores, err
}
