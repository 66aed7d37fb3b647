package model

type DuelStatus string

const (
	DuelPending  DuelStatus = "pending"
	DuelActive   DuelStatus = "active"
	DuelFinished DuelStatus = "finished"
)

// Duel is a 1v1 quiz competition. Both players answer the same quiz; when
// both are done the pot (twice the stake) goes to the winner.
// swagger:model Duel
type Duel struct {
	BaseModel
	QuizID          uint       `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	ChallengerID    uint       `gorm:"index;type:bigint unsigned;not null" json:"challengerId"`
	OpponentID      uint       `gorm:"index;type:bigint unsigned;not null" json:"opponentId"`
	Stake           int        `gorm:"default:0" json:"stake"`
	Status          DuelStatus `gorm:"type:enum('pending','active','finished');default:'pending'" json:"status"`
	ChallengerScore int        `gorm:"default:0" json:"challengerScore"`
	OpponentScore   int        `gorm:"default:0" json:"opponentScore"`
	ChallengerDone  bool       `gorm:"default:false" json:"challengerDone"`
	OpponentDone    bool       `gorm:"default:false" json:"opponentDone"`
	// WinnerID is zero for a draw.
	WinnerID uint `gorm:"type:bigint unsigned" json:"winnerId"`
}

func (Duel) TableName() string {
	return "duels"
}
