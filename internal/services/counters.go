package services

import (
	"prodiny/internal/db"
	"prodiny/internal/models"

	"gorm.io/gorm"
)

// ToggleSubgroupMembership joins the user to the subgroup, or leaves it
// if a membership row already exists. Returns whether the user is a
// member afterwards and the new member count.
func ToggleSubgroupMembership(userID, subgroupID uint) (joined bool, memberCount int64, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.SubgroupMember
		res := tx.Where("user_id = ? AND subgroup_id = ?", userID, subgroupID).First(&existing)
		if res.Error == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			joined = false
			return nil
		}
		if res.Error != gorm.ErrRecordNotFound {
			return res.Error
		}

		member := models.SubgroupMember{
			UserID:     userID,
			SubgroupID: subgroupID,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		joined = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	db.DB.Model(&models.SubgroupMember{}).Where("subgroup_id = ?", subgroupID).Count(&memberCount)
	return joined, memberCount, nil
}

// CreateProjectWithOwner creates the project and its owner membership
// row in one transaction, so a project never exists without a member.
func CreateProjectWithOwner(project *models.Project) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		member := models.ProjectMember{
			ProjectID: project.ID,
			UserID:    project.OwnerID,
			Role:      models.ProjectRoleOwner,
		}
		return tx.Create(&member).Error
	})
}

// TaskCounts returns the number of tasks per board column for a
// project. Counts are computed live, never cached, so they cannot
// drift from the task rows.
func TaskCounts(projectID uint) map[string]int {
	counts := map[string]int{
		models.TaskStatusTodo:  0,
		models.TaskStatusDoing: 0,
		models.TaskStatusDone:  0,
	}

	type row struct {
		Status string
		Count  int
	}
	var rows []row
	db.DB.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows)

	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts
}

// MemberCount returns the number of members of a project.
func MemberCount(projectID uint) int64 {
	var count int64
	db.DB.Model(&models.ProjectMember{}).Where("project_id = ?", projectID).Count(&count)
	return count
}
