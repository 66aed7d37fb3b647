package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title     string         `gorm:"size:200;not null" json:"title"`
	AuthorID  uint           `gorm:"index;type:bigint unsigned" json:"authorId"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID  uint   `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Order   int    `gorm:"column:order_index;not null" json:"order"`
	Text    string `gorm:"size:500;not null" json:"text"`
	OptionA string `gorm:"size:255" json:"optionA"`
	OptionB string `gorm:"size:255" json:"optionB"`
	OptionC string `gorm:"size:255" json:"optionC"`
	OptionD string `gorm:"size:255" json:"optionD"`
	// Correct is the index of the right option, 0..3.
	Correct      int `gorm:"not null" json:"-"`
	Points       int `gorm:"default:100" json:"points"`
	TimeLimitSec int `gorm:"default:30" json:"timeLimitSec"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
