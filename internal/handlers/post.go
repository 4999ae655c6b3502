package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"prodiny/internal/db"
	"prodiny/internal/models"
	"prodiny/internal/services"
	"prodiny/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

const defaultPostLimit = 20

type postResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	ContentHTML   string `json:"content_html"`
	AuthorName    string `json:"author_name"`
	AuthorCollege string `json:"author_college"`
	SubgroupID    uint   `json:"subgroup_id"`
	SubgroupName  string `json:"subgroup_name"`
	PostType      string `json:"post_type"`
	Upvotes       int    `json:"upvotes"`
	Downvotes     int    `json:"downvotes"`
	CommentCount  int    `json:"comment_count"`
	CreatedAt     string `json:"created_at"`
}

type commentResponse struct {
	ID          uint   `json:"id"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html"`
	AuthorName  string `json:"author_name"`
	CreatedAt   string `json:"created_at"`
}

type createPostRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	SubgroupID uint   `json:"subgroup_id" binding:"required"`
	PostType   string `json:"post_type"`
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
	PostID  uint   `json:"post_id"` // only used by the legacy /comments route
}

// fillCommentCounts batch-fills CommentCount for a page of posts with a
// single grouped query.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

func toPostResponse(p models.Post) postResponse {
	return postResponse{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		ContentHTML:   utils.RenderMarkdown(p.Content),
		AuthorName:    p.User.Name,
		AuthorCollege: p.User.CollegeName,
		SubgroupID:    p.SubgroupID,
		SubgroupName:  p.Subgroup.Name,
		PostType:      p.PostType,
		Upvotes:       p.Upvotes,
		Downvotes:     p.Downvotes,
		CommentCount:  p.CommentCount,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func toPostResponses(posts []models.Post) []postResponse {
	fillCommentCounts(posts)
	out := make([]postResponse, len(posts))
	for i, p := range posts {
		out[i] = toPostResponse(p)
	}
	return out
}

// pageParams reads ?page and ?limit with the original API's defaults.
func pageParams(c *gin.Context) (limit, offset int) {
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	limit = defaultPostLimit
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	return limit, (page - 1) * limit
}

// ListPosts returns a recency-ordered page, optionally filtered to one
// subgroup.
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, offset := pageParams(c)

	query := db.DB.Preload("User").Preload("Subgroup")
	if sg := c.Query("subgroup"); sg != "" {
		query = query.Where("subgroup_id = ?", utils.StringToInt(sg))
	}

	var posts []models.Post
	query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts)

	c.JSON(http.StatusOK, toPostResponses(posts))
}

// ListPopular returns the feed ordered by the popularity score the
// ranking worker maintains. Cached briefly, the score only moves on
// vote/comment activity anyway.
func (h *PostHandler) ListPopular(c *gin.Context) {
	limit, offset := pageParams(c)

	cacheKey := fmt.Sprintf("posts:popular:%d:%d", limit, offset)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if resp, ok := cached.([]postResponse); ok {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	var posts []models.Post
	db.DB.Preload("User").Preload("Subgroup").
		Order("score DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)

	resp := toPostResponses(posts)
	utils.GetCache().Set(cacheKey, resp, 1*time.Minute)

	c.JSON(http.StatusOK, resp)
}

// ListByCollege returns posts authored by users of one college.
func (h *PostHandler) ListByCollege(c *gin.Context) {
	collegeName := c.Param("name")
	limit, offset := pageParams(c)

	var posts []models.Post
	db.DB.Preload("User").Preload("Subgroup").
		Joins("JOIN users ON posts.user_id = users.id").
		Where("users.college_name = ?", collegeName).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)

	c.JSON(http.StatusOK, toPostResponses(posts))
}

func (h *PostHandler) Create(c *gin.Context) {
	user := MustCurrentUser(c)

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Title, content and subgroup_id are required")
		return
	}

	var subgroup models.Subgroup
	if err := db.DB.First(&subgroup, req.SubgroupID).Error; err != nil {
		Fail(c, http.StatusBadRequest, "Unknown subgroup")
		return
	}

	postType := req.PostType
	if postType == "" {
		postType = models.PostTypeDiscussion
	}

	post := models.Post{
		UserID:     user.ID,
		SubgroupID: req.SubgroupID,
		Title:      req.Title,
		Content:    req.Content,
		PostType:   postType,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	post.User = *user
	post.Subgroup = subgroup
	c.JSON(http.StatusOK, toPostResponse(post))
}

// ListComments returns a post's comments oldest-first.
func (h *PostHandler) ListComments(c *gin.Context) {
	postID := utils.StringToInt(c.Param("id"))

	var comments []models.Comment
	db.DB.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments)

	resp := make([]commentResponse, len(comments))
	for i, com := range comments {
		resp[i] = commentResponse{
			ID:          com.ID,
			Content:     com.Content,
			ContentHTML: utils.RenderMarkdown(com.Content),
			AuthorName:  com.User.Name,
			CreatedAt:   com.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CreateComment handles POST /posts/:id/comments.
func (h *PostHandler) CreateComment(c *gin.Context) {
	h.createComment(c, uint(utils.StringToInt(c.Param("id"))))
}

// CreateCommentLegacy handles the flat POST /comments route kept for
// the older frontend, which carries post_id in the body.
func (h *PostHandler) CreateCommentLegacy(c *gin.Context) {
	h.createComment(c, 0)
}

func (h *PostHandler) createComment(c *gin.Context, postID uint) {
	user := MustCurrentUser(c)

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Content is required")
		return
	}
	if postID == 0 {
		postID = req.PostID
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		Fail(c, http.StatusNotFound, "Post not found")
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	// Comment activity feeds the popularity score
	services.GetRankingService().ScheduleUpdate(post.ID)

	c.JSON(http.StatusOK, commentResponse{
		ID:          comment.ID,
		Content:     comment.Content,
		ContentHTML: utils.RenderMarkdown(comment.Content),
		AuthorName:  user.Name,
		CreatedAt:   comment.CreatedAt.Format(time.RFC3339),
	})
}
