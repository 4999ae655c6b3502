package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subgroupJSON struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	MemberCount int64  `json:"member_count"`
	PostCount   int64  `json:"post_count"`
	IsJoined    bool   `json:"is_joined"`
}

func TestListSeededSubgroups(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/subgroups", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var subgroups []subgroupJSON
	decodeBody(t, w, &subgroups)
	require.Len(t, subgroups, 12)
	assert.Equal(t, "AI & Machine Learning", subgroups[0].Name)
	for _, sg := range subgroups {
		assert.False(t, sg.IsJoined)
		assert.Zero(t, sg.MemberCount)
	}
}

func TestJoinToggles(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")

	w := doJSON(t, r, http.MethodPost, "/subgroups/1/join", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		IsJoined    bool  `json:"is_joined"`
		MemberCount int64 `json:"member_count"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.IsJoined)
	assert.Equal(t, int64(1), resp.MemberCount)

	// listing with the token reflects membership
	w = doJSON(t, r, http.MethodGet, "/subgroups", nil, token)
	var subgroups []subgroupJSON
	decodeBody(t, w, &subgroups)
	assert.True(t, subgroups[0].IsJoined)

	// joining again leaves
	w = doJSON(t, r, http.MethodPost, "/subgroups/1/join", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.False(t, resp.IsJoined)
	assert.Equal(t, int64(0), resp.MemberCount)
}

func TestJoinUnknownSubgroup(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")

	w := doJSON(t, r, http.MethodPost, "/subgroups/9999/join", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubgroupPostCount(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "alice", "alice@example.edu")
	createPost(t, r, token, "counted")

	w := doJSON(t, r, http.MethodGet, "/subgroups", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var subgroups []subgroupJSON
	decodeBody(t, w, &subgroups)
	assert.Equal(t, int64(1), subgroups[0].PostCount)
}
