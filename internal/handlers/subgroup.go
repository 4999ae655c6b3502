package handlers

import (
	"net/http"

	"prodiny/internal/db"
	"prodiny/internal/models"
	"prodiny/internal/services"
	"prodiny/internal/utils"

	"github.com/gin-gonic/gin"
)

type SubgroupHandler struct{}

func NewSubgroupHandler() *SubgroupHandler {
	return &SubgroupHandler{}
}

type subgroupResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	MemberCount int64  `json:"member_count"`
	PostCount   int64  `json:"post_count"`
	IsJoined    bool   `json:"is_joined"`
}

// List returns all subgroups with live counts. is_joined is filled only
// when the request carries a valid token.
func (h *SubgroupHandler) List(c *gin.Context) {
	var subgroups []models.Subgroup
	db.DB.Order("name ASC").Find(&subgroups)

	joined := make(map[uint]bool)
	if user := CurrentUser(c); user != nil {
		var memberships []models.SubgroupMember
		db.DB.Where("user_id = ?", user.ID).Find(&memberships)
		for _, m := range memberships {
			joined[m.SubgroupID] = true
		}
	}

	type groupCount struct {
		SubgroupID uint
		Count      int64
	}
	memberCounts := make(map[uint]int64)
	var mc []groupCount
	db.DB.Model(&models.SubgroupMember{}).
		Select("subgroup_id, COUNT(*) as count").
		Group("subgroup_id").
		Scan(&mc)
	for _, r := range mc {
		memberCounts[r.SubgroupID] = r.Count
	}

	postCounts := make(map[uint]int64)
	var pc []groupCount
	db.DB.Model(&models.Post{}).
		Select("subgroup_id, COUNT(*) as count").
		Group("subgroup_id").
		Scan(&pc)
	for _, r := range pc {
		postCounts[r.SubgroupID] = r.Count
	}

	resp := make([]subgroupResponse, len(subgroups))
	for i, sg := range subgroups {
		resp[i] = subgroupResponse{
			ID:          sg.ID,
			Name:        sg.Name,
			Description: sg.Description,
			Icon:        sg.Icon,
			MemberCount: memberCounts[sg.ID],
			PostCount:   postCounts[sg.ID],
			IsJoined:    joined[sg.ID],
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Join toggles membership: joining when not a member, leaving when
// already one.
func (h *SubgroupHandler) Join(c *gin.Context) {
	user := MustCurrentUser(c)
	subgroupID := uint(utils.StringToInt(c.Param("id")))

	var subgroup models.Subgroup
	if err := db.DB.First(&subgroup, subgroupID).Error; err != nil {
		Fail(c, http.StatusNotFound, "Subgroup not found")
		return
	}

	joined, memberCount, err := services.ToggleSubgroupMembership(user.ID, subgroup.ID)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to update membership")
		return
	}

	message := "Left subgroup"
	if joined {
		message = "Joined subgroup"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      message,
		"is_joined":    joined,
		"member_count": memberCount,
	})
}
