package service

import (
	"bananalearn_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func question(correct, points, limitSec int) model.QuizQuestion {
	return model.QuizQuestion{
		Correct:      correct,
		Points:       points,
		TimeLimitSec: limitSec,
	}
}

func TestAnswerPointsWrongOption(t *testing.T) {
	q := question(2, 100, 30)

	assert.Equal(t, 0, AnswerPoints(q, 0, 5))
	assert.Equal(t, 0, AnswerPoints(q, 3, 50), "wrong answers score zero even when slow")
}

func TestAnswerPointsWithinTimeLimit(t *testing.T) {
	q := question(1, 100, 30)

	assert.Equal(t, 100, AnswerPoints(q, 1, 0))
	assert.Equal(t, 100, AnswerPoints(q, 1, 30), "the limit itself still counts as in time")
}

func TestAnswerPointsOverTimeLimit(t *testing.T) {
	q := question(1, 100, 30)

	assert.Equal(t, 50, AnswerPoints(q, 1, 31))
	assert.Equal(t, 50, AnswerPoints(q, 1, 300))
}

func TestAnswerPointsOddPointsHalved(t *testing.T) {
	q := question(0, 75, 20)

	assert.Equal(t, 37, AnswerPoints(q, 0, 25))
}
