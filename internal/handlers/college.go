package handlers

import (
	"net/http"
	"sort"

	"prodiny/internal/db"
	"prodiny/internal/models"

	"github.com/gin-gonic/gin"
)

type CollegeHandler struct{}

func NewCollegeHandler() *CollegeHandler {
	return &CollegeHandler{}
}

type collegeResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Domain       string `json:"domain"`
	Location     string `json:"location"`
	StudentCount int64  `json:"student_count"`
	ProjectCount int64  `json:"project_count"`
}

type createCollegeRequest struct {
	Name     string `json:"name" binding:"required"`
	Domain   string `json:"domain" binding:"required"`
	Location string `json:"location"`
}

// List returns all colleges with live student and project counts,
// largest first.
func (h *CollegeHandler) List(c *gin.Context) {
	var colleges []models.College
	db.DB.Find(&colleges)

	type nameCount struct {
		CollegeName string
		Count       int64
	}
	studentCounts := make(map[string]int64)
	var sc []nameCount
	db.DB.Model(&models.User{}).
		Select("college_name, COUNT(*) as count").
		Where("college_name <> ''").
		Group("college_name").
		Scan(&sc)
	for _, r := range sc {
		studentCounts[r.CollegeName] = r.Count
	}

	projectCounts := make(map[string]int64)
	var pc []nameCount
	db.DB.Model(&models.Project{}).
		Select("users.college_name as college_name, COUNT(*) as count").
		Joins("JOIN users ON projects.owner_id = users.id").
		Where("users.college_name <> ''").
		Group("users.college_name").
		Scan(&pc)
	for _, r := range pc {
		projectCounts[r.CollegeName] = r.Count
	}

	resp := make([]collegeResponse, len(colleges))
	for i, col := range colleges {
		resp[i] = collegeResponse{
			ID:           col.ID,
			Name:         col.Name,
			Domain:       col.Domain,
			Location:     col.Location,
			StudentCount: studentCounts[col.Name],
			ProjectCount: projectCounts[col.Name],
		}
	}
	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].StudentCount > resp[j].StudentCount
	})
	c.JSON(http.StatusOK, resp)
}

func (h *CollegeHandler) Create(c *gin.Context) {
	var req createCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Name and domain are required")
		return
	}

	var count int64
	db.DB.Model(&models.College{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		Fail(c, http.StatusBadRequest, "College already exists")
		return
	}

	college := models.College{
		Name:     req.Name,
		Domain:   req.Domain,
		Location: req.Location,
	}
	if err := db.DB.Create(&college).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create college")
		return
	}

	c.JSON(http.StatusOK, collegeResponse{
		ID:       college.ID,
		Name:     college.Name,
		Domain:   college.Domain,
		Location: college.Location,
	})
}
