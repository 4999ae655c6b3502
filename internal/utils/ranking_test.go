package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZeroEngagementScoresZero(t *testing.T) {
	score := CalculateScore(time.Now(), 0, 0, 0)
	assert.Equal(t, 0.0, score)
}

func TestMoreVotesScoreHigher(t *testing.T) {
	created := time.Now().Add(-1 * time.Hour)

	low := CalculateScore(created, 1, 0, 0)
	high := CalculateScore(created, 10, 0, 0)
	assert.Greater(t, high, low)
}

func TestCommentsWeighMoreThanUpvotes(t *testing.T) {
	created := time.Now().Add(-1 * time.Hour)

	voted := CalculateScore(created, 5, 0, 0)
	discussed := CalculateScore(created, 0, 0, 5)
	assert.Greater(t, discussed, voted)
}

func TestDownvotesNeverGoNegative(t *testing.T) {
	created := time.Now().Add(-1 * time.Hour)

	score := CalculateScore(created, 0, 50, 0)
	assert.Equal(t, 0.0, score)
}

func TestOlderPostsDecay(t *testing.T) {
	fresh := CalculateScore(time.Now().Add(-1*time.Hour), 10, 0, 2)
	stale := CalculateScore(time.Now().Add(-72*time.Hour), 10, 0, 2)
	assert.Greater(t, fresh, stale)
}
