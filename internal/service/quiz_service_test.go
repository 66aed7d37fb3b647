package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type memQuizStore struct {
	quizzes map[uint]*model.Quiz
	nextID  uint
	deleted []uint
}

func newMemQuizStore() *memQuizStore {
	return &memQuizStore{quizzes: map[uint]*model.Quiz{}, nextID: 1}
}

func (m *memQuizStore) Create(quiz *model.Quiz) error {
	quiz.ID = m.nextID
	m.nextID++
	copied := *quiz
	m.quizzes[quiz.ID] = &copied
	return nil
}

func (m *memQuizStore) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := m.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *quiz
	return &copied, nil
}

func (m *memQuizStore) FindByAuthor(authorID uint) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range m.quizzes {
		if q.AuthorID == authorID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (m *memQuizStore) ReplaceQuestions(quizID uint, title string, questions []model.QuizQuestion) error {
	quiz, ok := m.quizzes[quizID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range questions {
		questions[i].QuizID = quizID
	}
	quiz.Title = title
	quiz.Questions = questions
	return nil
}

func (m *memQuizStore) Delete(id uint) error {
	delete(m.quizzes, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func quizRequest(title string, questionTexts ...string) QuizRequest {
	req := QuizRequest{Title: title}
	for _, text := range questionTexts {
		req.Questions = append(req.Questions, QuestionRequest{
			Text:    text,
			OptionA: "a",
			OptionB: "b",
			Correct: 0,
		})
	}
	return req
}

func TestUpdateQuizKeepsID(t *testing.T) {
	store := newMemQuizStore()
	svc := NewQuizService(store)

	created, err := svc.CreateQuiz(3, quizRequest("Jungle basics", "q1", "q2"))
	assert.NoError(t, err)

	updated, err := svc.UpdateQuiz(3, created.ID, quizRequest("Jungle basics v2", "q1", "q2", "q3"), false)
	assert.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "editing a quiz must not change its identity")
	assert.Empty(t, store.deleted, "the quiz row must survive the edit")
	assert.Equal(t, "Jungle basics v2", updated.Title)
	assert.Len(t, updated.Questions, 3)

	// A session or duel holding the old ID still resolves the quiz.
	reloaded, err := svc.GetQuiz(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Jungle basics v2", reloaded.Title)
}

func TestUpdateQuizAuthorOnly(t *testing.T) {
	store := newMemQuizStore()
	svc := NewQuizService(store)

	created, err := svc.CreateQuiz(3, quizRequest("Jungle basics", "q1"))
	assert.NoError(t, err)

	_, err = svc.UpdateQuiz(4, created.ID, quizRequest("Hijacked", "q1"), false)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// Admins may edit anyone's quiz.
	updated, err := svc.UpdateQuiz(4, created.ID, quizRequest("Moderated", "q1"), true)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
}
