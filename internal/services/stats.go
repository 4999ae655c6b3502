package services

import (
	"prodiny/internal/db"
	"prodiny/internal/models"
)

// CollegeCount is one row of a per-college breakdown.
type CollegeCount struct {
	College string `json:"college"`
	Count   int64  `json:"count"`
}

// AdminStats aggregates full-collection counts for the admin dashboard.
type AdminStats struct {
	TotalUsers        int64          `json:"total_users"`
	TotalColleges     int64          `json:"total_colleges"`
	TotalProjects     int64          `json:"total_projects"`
	TotalPosts        int64          `json:"total_posts"`
	UsersByCollege    []CollegeCount `json:"users_by_college"`
	ProjectsByCollege []CollegeCount `json:"projects_by_college"`
}

// ComputeStats runs the dashboard aggregation queries.
func ComputeStats() (*AdminStats, error) {
	stats := &AdminStats{
		UsersByCollege:    []CollegeCount{},
		ProjectsByCollege: []CollegeCount{},
	}

	if err := db.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&models.College{}).Count(&stats.TotalColleges).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&models.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&models.Post{}).Count(&stats.TotalPosts).Error; err != nil {
		return nil, err
	}

	if err := db.DB.Model(&models.User{}).
		Select("college_name as college, COUNT(*) as count").
		Where("college_name <> ''").
		Group("college_name").
		Order("count DESC").
		Scan(&stats.UsersByCollege).Error; err != nil {
		return nil, err
	}

	if err := db.DB.Model(&models.Project{}).
		Select("users.college_name as college, COUNT(projects.id) as count").
		Joins("JOIN users ON projects.owner_id = users.id").
		Where("users.college_name <> ''").
		Group("users.college_name").
		Order("count DESC").
		Scan(&stats.ProjectsByCollege).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
