package service

import (
	"bananalearn_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func finishedDuel(challengerScore, opponentScore, stake int) *model.Duel {
	return &model.Duel{
		ChallengerID:    10,
		OpponentID:      20,
		Stake:           stake,
		ChallengerScore: challengerScore,
		OpponentScore:   opponentScore,
	}
}

func TestResolveDuelChallengerWins(t *testing.T) {
	outcome := ResolveDuel(finishedDuel(800, 500, 50))

	assert.Equal(t, uint(10), outcome.WinnerID)
	assert.Equal(t, 100, outcome.Payout, "winner takes the whole pot")
}

func TestResolveDuelOpponentWins(t *testing.T) {
	outcome := ResolveDuel(finishedDuel(300, 900, 25))

	assert.Equal(t, uint(20), outcome.WinnerID)
	assert.Equal(t, 50, outcome.Payout)
}

func TestResolveDuelDrawRefundsStake(t *testing.T) {
	outcome := ResolveDuel(finishedDuel(600, 600, 40))

	assert.Equal(t, uint(0), outcome.WinnerID)
	assert.Equal(t, 40, outcome.Payout, "each player gets their own stake back")
}

func TestResolveDuelZeroScores(t *testing.T) {
	outcome := ResolveDuel(finishedDuel(0, 0, 10))

	assert.Equal(t, uint(0), outcome.WinnerID)
	assert.Equal(t, 10, outcome.Payout)
}
