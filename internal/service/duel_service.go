package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/repository"
	"bananalearn_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

// DuelService runs 1v1 quiz competitions. Both players answer the same
// quiz on their own time; the duel resolves when the second player
// finishes. Status is polled, never pushed.
type DuelService struct {
	DuelRepo     *repository.DuelRepository
	QuizRepo     *repository.QuizRepository
	UserRepo     *repository.UserRepository
	Gamification *GamificationService
	DB           *gorm.DB
}

func NewDuelService(
	duelRepo *repository.DuelRepository,
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	gamification *GamificationService,
	db *gorm.DB,
) *DuelService {
	return &DuelService{
		DuelRepo:     duelRepo,
		QuizRepo:     quizRepo,
		UserRepo:     userRepo,
		Gamification: gamification,
		DB:           db,
	}
}

// DuelOutcome is the resolved result of a finished duel.
type DuelOutcome struct {
	// WinnerID is zero for a draw.
	WinnerID uint
	// Payout is what the winner receives (the full pot), or what each
	// player gets back on a draw.
	Payout int
}

// ResolveDuel decides the outcome from both final scores and the stake.
func ResolveDuel(duel *model.Duel) DuelOutcome {
	pot := duel.Stake * 2
	switch {
	case duel.ChallengerScore > duel.OpponentScore:
		return DuelOutcome{WinnerID: duel.ChallengerID, Payout: pot}
	case duel.OpponentScore > duel.ChallengerScore:
		return DuelOutcome{WinnerID: duel.OpponentID, Payout: pot}
	default:
		return DuelOutcome{WinnerID: 0, Payout: duel.Stake}
	}
}

// CreateDuel escrows the challenger's stake and opens a pending duel.
func (s *DuelService) CreateDuel(challengerID, opponentID, quizID uint, stake int) (*model.Duel, error) {
	if stake < 0 {
		stake = 0
	}
	if challengerID == opponentID {
		return nil, util.ErrDuelNotParticipant
	}

	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(opponentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	duel := &model.Duel{
		QuizID:       quizID,
		ChallengerID: challengerID,
		OpponentID:   opponentID,
		Stake:        stake,
		Status:       model.DuelPending,
	}

	// Escrow and duel row commit together.
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if stake > 0 {
			if err := repository.NewUserRepository(tx).SpendXP(challengerID, stake); err != nil {
				return err
			}
		}
		return repository.NewDuelRepository(tx).Create(duel)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInsufficientBananes
		}
		return nil, err
	}

	return duel, nil
}

// AcceptDuel escrows the opponent's stake and activates the duel.
func (s *DuelService) AcceptDuel(userID, duelID uint) (*model.Duel, error) {
	duel, err := s.getDuel(duelID)
	if err != nil {
		return nil, err
	}
	if duel.OpponentID != userID {
		return nil, util.ErrDuelNotParticipant
	}
	if duel.Status != model.DuelPending {
		return nil, util.ErrDuelNotPending
	}

	duel.Status = model.DuelActive

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if duel.Stake > 0 {
			if err := repository.NewUserRepository(tx).SpendXP(userID, duel.Stake); err != nil {
				return err
			}
		}
		return repository.NewDuelRepository(tx).Update(duel)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInsufficientBananes
		}
		return nil, err
	}

	return duel, nil
}

// SubmitResult records one player's final score. When both players are
// done the duel resolves: the winner takes the pot and gets the full
// evaluator run; the loser only gets a badge check, a passive loss is not
// activity-defining.
func (s *DuelService) SubmitResult(userID, duelID uint, score int) (*model.Duel, error) {
	duel, err := s.getDuel(duelID)
	if err != nil {
		return nil, err
	}
	if duel.Status != model.DuelActive {
		return nil, util.ErrDuelNotActive
	}

	switch userID {
	case duel.ChallengerID:
		if duel.ChallengerDone {
			return nil, util.ErrAlreadyAnswered
		}
		duel.ChallengerScore = score
		duel.ChallengerDone = true
	case duel.OpponentID:
		if duel.OpponentDone {
			return nil, util.ErrAlreadyAnswered
		}
		duel.OpponentScore = score
		duel.OpponentDone = true
	default:
		return nil, util.ErrDuelNotParticipant
	}

	if duel.ChallengerDone && duel.OpponentDone {
		outcome := ResolveDuel(duel)
		duel.Status = model.DuelFinished
		duel.WinnerID = outcome.WinnerID

		// Settlement and payout commit together.
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			if err := repository.NewDuelRepository(tx).Update(duel); err != nil {
				return err
			}
			if outcome.Payout == 0 {
				return nil
			}
			users := repository.NewUserRepository(tx)
			if outcome.WinnerID != 0 {
				return users.AddXP(outcome.WinnerID, outcome.Payout)
			}
			// Draw: both stakes come back.
			if err := users.AddXP(duel.ChallengerID, outcome.Payout); err != nil {
				return err
			}
			return users.AddXP(duel.OpponentID, outcome.Payout)
		})
		if err != nil {
			return nil, err
		}

		now := time.Now()
		if outcome.WinnerID != 0 {
			loserID := duel.ChallengerID
			if outcome.WinnerID == duel.ChallengerID {
				loserID = duel.OpponentID
			}
			s.Gamification.RecordActivity(outcome.WinnerID, now, true)
			s.Gamification.RecordActivity(loserID, now, false)
		} else {
			// Both players were active in a draw.
			s.Gamification.RecordActivity(duel.ChallengerID, now, true)
			s.Gamification.RecordActivity(duel.OpponentID, now, true)
		}

		return duel, nil
	}

	if err := s.DuelRepo.Update(duel); err != nil {
		return nil, err
	}

	return duel, nil
}

func (s *DuelService) GetDuel(userID, duelID uint) (*model.Duel, error) {
	duel, err := s.getDuel(duelID)
	if err != nil {
		return nil, err
	}
	if duel.ChallengerID != userID && duel.OpponentID != userID {
		return nil, util.ErrDuelNotParticipant
	}
	return duel, nil
}

func (s *DuelService) ListDuels(userID uint) ([]model.Duel, error) {
	return s.DuelRepo.FindByUser(userID)
}

func (s *DuelService) getDuel(duelID uint) (*model.Duel, error) {
	duel, err := s.DuelRepo.FindByID(duelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDuelNotFound
	}
	return duel, err
}
