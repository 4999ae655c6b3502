package services

import (
	"log"
	"sync"
	"time"

	"prodiny/internal/db"
	"prodiny/internal/models"
	"prodiny/internal/utils"
)

// RankingService recomputes post popularity scores asynchronously so
// vote and comment requests never pay for the aggregation query.
type RankingService struct {
	queue       chan uint // post IDs waiting for a recompute
	pending     map[uint]bool
	mu          sync.Mutex
	synchronous bool
}

var (
	rankingService *RankingService
	once           sync.Once
)

// GetRankingService returns the singleton ranking service
func GetRankingService() *RankingService {
	once.Do(func() {
		rankingService = &RankingService{
			queue:   make(chan uint, 1000), // buffered so producers never block
			pending: make(map[uint]bool),
		}
		go rankingService.worker()
	})
	return rankingService
}

// SetSynchronous makes ScheduleUpdate recompute scores inline instead
// of handing them to the background worker. Used where the caller owns
// a short-lived database and the worker must not touch it afterwards.
func (s *RankingService) SetSynchronous(on bool) {
	s.mu.Lock()
	s.synchronous = on
	s.mu.Unlock()
}

// ScheduleUpdate queues a post for a score recompute. Duplicate
// requests for a post already in the queue are dropped.
func (s *RankingService) ScheduleUpdate(postID uint) {
	s.mu.Lock()
	if s.synchronous {
		s.mu.Unlock()
		s.updatePostScore(postID)
		return
	}
	if s.pending[postID] {
		s.mu.Unlock()
		return
	}
	s.pending[postID] = true
	s.mu.Unlock()

	select {
	case s.queue <- postID:
	default:
		// queue full, drop and clear the pending mark
		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
		log.Printf("Ranking queue full, skipping post %d", postID)
	}
}

// worker drains the queue in batches every 500ms.
func (s *RankingService) worker() {
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case postID := <-s.queue:
			batch = append(batch, postID)
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *RankingService) processBatch(postIDs []uint) {
	for _, postID := range postIDs {
		s.updatePostScore(postID)

		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
	}
}

// updatePostScore recomputes one post's score from its live vote and
// comment rows.
func (s *RankingService) updatePostScore(postID uint) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		log.Printf("Score update skipped: post %d not found", postID)
		return
	}

	var upvotes int64
	db.DB.Model(&models.PostVote{}).Where("post_id = ? AND value = 1", postID).Count(&upvotes)

	var downvotes int64
	db.DB.Model(&models.PostVote{}).Where("post_id = ? AND value = -1", postID).Count(&downvotes)

	var comments int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)

	newScore := utils.CalculateScore(
		post.CreatedAt,
		int(upvotes),
		int(downvotes),
		int(comments),
	)

	// Score is stored as an integer in the 0-100 range
	scoreInt := int(newScore)

	if err := db.DB.Model(&post).UpdateColumn("score", scoreInt).Error; err != nil {
		log.Printf("Failed to update score for post %d: %v", postID, err)
	}
}

// UpdatePostScoreSync recomputes a post's score immediately, for
// callers that need the new value in the same request.
func UpdatePostScoreSync(postID uint) {
	GetRankingService().updatePostScore(postID)
}
