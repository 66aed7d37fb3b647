package repository

import (
	"bananalearn_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.order_index asc")
	}).First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByAuthor(authorID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("author_id = ?", authorID).Order("created_at desc").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(quiz).Error
}

// ReplaceQuestions swaps a quiz's title and question set in one
// transaction. The quiz row and its ID survive, so live sessions and
// duels referencing the quiz never dangle.
func (r *QuizRepository) ReplaceQuestions(quizID uint, title string, questions []model.QuizQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Quiz{}).Where("id = ?", quizID).Update("title", title).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quizID
		}
		return tx.Create(&questions).Error
	})
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
