package model

type SessionStatus string

const (
	SessionLobby    SessionStatus = "lobby"
	SessionQuestion SessionStatus = "question"
	SessionFinished SessionStatus = "finished"
)

// LiveSession is one Kahoot-style run of a quiz. Clients poll its status;
// there is no push channel.
// swagger:model LiveSession
type LiveSession struct {
	BaseModel
	QuizID          uint          `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	HostID          uint          `gorm:"index;type:bigint unsigned;not null" json:"hostId"`
	Code            string        `gorm:"size:10;index;not null" json:"code"`
	Status          SessionStatus `gorm:"type:enum('lobby','question','finished');default:'lobby'" json:"status"`
	CurrentQuestion int           `gorm:"default:0" json:"currentQuestion"`
}

func (LiveSession) TableName() string {
	return "live_sessions"
}

// SessionAnswer is one participant's answer to one question of a session.
// swagger:model SessionAnswer
type SessionAnswer struct {
	BaseModel
	SessionID     uint `gorm:"uniqueIndex:idx_session_user_question;type:bigint unsigned;not null" json:"sessionId"`
	UserID        uint `gorm:"uniqueIndex:idx_session_user_question;type:bigint unsigned;not null" json:"userId"`
	QuestionOrder int  `gorm:"uniqueIndex:idx_session_user_question;not null" json:"questionOrder"`
	Option        int  `json:"option"`
	ElapsedSec    int  `json:"elapsedSec"`
	Points        int  `json:"points"`
}

func (SessionAnswer) TableName() string {
	return "session_answers"
}
