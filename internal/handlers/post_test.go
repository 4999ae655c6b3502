package handlers_test

import (
	"net/http"
	"testing"

	"prodiny/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postJSON struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	AuthorName    string `json:"author_name"`
	AuthorCollege string `json:"author_college"`
	SubgroupName  string `json:"subgroup_name"`
	PostType      string `json:"post_type"`
	Upvotes       int    `json:"upvotes"`
	Downvotes     int    `json:"downvotes"`
	CommentCount  int    `json:"comment_count"`
}

func createPost(t *testing.T, r *gin.Engine, token, title string) postJSON {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"title":       title,
		"content":     "some *markdown* content",
		"subgroup_id": 1,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var post postJSON
	decodeBody(t, w, &post)
	return post
}

func TestCreatePostRequiresAuth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"title":       "No auth",
		"content":     "body",
		"subgroup_id": 1,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListPosts(t *testing.T) {
	r := setupServer(t)
	token := registerCollegeUser(t, r, "alice", "StateU")

	created := createPost(t, r, token, "First post")
	assert.Equal(t, "discussion", created.PostType)
	assert.Equal(t, 0, created.Upvotes)
	assert.Equal(t, 0, created.Downvotes)

	w := doJSON(t, r, http.MethodGet, "/posts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []postJSON
	decodeBody(t, w, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "First post", posts[0].Title)
	assert.Equal(t, "alice", posts[0].AuthorName)
	assert.Equal(t, "StateU", posts[0].AuthorCollege)
	assert.Equal(t, "AI & Machine Learning", posts[0].SubgroupName)
	assert.Equal(t, 0, posts[0].CommentCount)
}

func TestListPostsFilterBySubgroup(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")

	createPost(t, r, token, "In subgroup 1")
	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"title":       "In subgroup 2",
		"content":     "body",
		"subgroup_id": 2,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/posts?subgroup=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []postJSON
	decodeBody(t, w, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "In subgroup 2", posts[0].Title)
}

func TestCreatePostUnknownSubgroup(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"title":       "Bad subgroup",
		"content":     "body",
		"subgroup_id": 9999,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentsRoundTrip(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")
	post := createPost(t, r, token, "Commented post")

	w := doJSON(t, r, http.MethodPost, "/posts/1/comments", gin.H{
		"content": "nice post",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// legacy flat route carries post_id in the body
	w = doJSON(t, r, http.MethodPost, "/comments", gin.H{
		"content": "second comment",
		"post_id": post.ID,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/posts/1/comments", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var comments []struct {
		Content    string `json:"content"`
		AuthorName string `json:"author_name"`
	}
	decodeBody(t, w, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "nice post", comments[0].Content)
	assert.Equal(t, "second comment", comments[1].Content)
	assert.Equal(t, "alice", comments[0].AuthorName)

	// comment_count is computed from the comment rows
	w = doJSON(t, r, http.MethodGet, "/posts", nil, "")
	var posts []postJSON
	decodeBody(t, w, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, 2, posts[0].CommentCount)
}

func TestCommentOnMissingPost(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")

	w := doJSON(t, r, http.MethodPost, "/posts/9999/comments", gin.H{
		"content": "into the void",
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPopularFeedOrdersByScore(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")

	quiet := createPost(t, r, token, "Quiet post")
	loud := createPost(t, r, token, "Loud post")

	w := doJSON(t, r, http.MethodPut, "/posts/2/vote", gin.H{"vote": 1}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	services.UpdatePostScoreSync(loud.ID)
	services.UpdatePostScoreSync(quiet.ID)

	w = doJSON(t, r, http.MethodGet, "/posts/popular", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []postJSON
	decodeBody(t, w, &posts)
	require.Len(t, posts, 2)
	assert.Equal(t, "Loud post", posts[0].Title)
}

func TestCollegePosts(t *testing.T) {
	r := setupServer(t)
	stateToken := registerCollegeUser(t, r, "alice", "StateU")
	techToken := registerCollegeUser(t, r, "bob", "TechU")

	createPost(t, r, stateToken, "From StateU")
	createPost(t, r, techToken, "From TechU")

	w := doJSON(t, r, http.MethodGet, "/college/StateU/posts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []postJSON
	decodeBody(t, w, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "From StateU", posts[0].Title)
}
