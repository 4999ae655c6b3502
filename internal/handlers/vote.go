package handlers

import (
	"errors"
	"net/http"

	"prodiny/internal/db"
	"prodiny/internal/models"
	"prodiny/internal/services"
	"prodiny/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	Vote *int `json:"vote" binding:"required"`
}

type voteResponse struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Vote sets one user's vote on a post: 1 up, -1 down, 0 clears it.
// The ledger row and the post counters move in the same transaction, so
// vote then unvote restores the pre-vote tally and repeating a vote is
// a no-op.
func (h *VoteHandler) Vote(c *gin.Context) {
	user := MustCurrentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "vote is required")
		return
	}
	value := *req.Vote
	if value < models.VoteDown || value > models.VoteUp {
		Fail(c, http.StatusBadRequest, "vote must be -1, 0 or 1")
		return
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		Fail(c, http.StatusNotFound, "Post not found")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.PostVote
		err := tx.Where("post_id = ? AND user_id = ?", post.ID, user.ID).
			First(&existing).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch {
		case !found && value == 0:
			// nothing to clear
			return nil
		case !found:
			if err := tx.Create(&models.PostVote{
				PostID: post.ID,
				UserID: user.ID,
				Value:  value,
			}).Error; err != nil {
				return err
			}
			return applyVoteDelta(tx, post.ID, value, 1)
		case value == 0:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return applyVoteDelta(tx, post.ID, existing.Value, -1)
		case existing.Value == value:
			// repeated vote, no-op
			return nil
		default:
			// Update by ID: tx.Model(&existing) would overwrite
			// existing.Value before the delta below reads it
			prev := existing.Value
			if err := tx.Model(&models.PostVote{}).
				Where("id = ?", existing.ID).
				Update("value", value).Error; err != nil {
				return err
			}
			if err := applyVoteDelta(tx, post.ID, prev, -1); err != nil {
				return err
			}
			return applyVoteDelta(tx, post.ID, value, 1)
		}
	})
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	services.GetRankingService().ScheduleUpdate(post.ID)

	db.DB.First(&post, post.ID)
	c.JSON(http.StatusOK, voteResponse{
		Upvotes:   post.Upvotes,
		Downvotes: post.Downvotes,
	})
}

func applyVoteDelta(tx *gorm.DB, postID uint, value, delta int) error {
	column := "upvotes"
	if value == models.VoteDown {
		column = "downvotes"
	}
	return tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
