package handlers

import (
	"net/http"
	"time"

	"prodiny/internal/db"
	"prodiny/internal/models"
	"prodiny/internal/services"
	"prodiny/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

const chatPageSize = 50

type projectResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	OwnerID     uint           `json:"owner_id"`
	OwnerName   string         `json:"owner_name"`
	Visibility  string         `json:"visibility"`
	Tags        []string       `json:"tags"`
	MemberCount int64          `json:"member_count"`
	TaskCounts  map[string]int `json:"task_counts"`
	CreatedAt   string         `json:"created_at"`
}

type taskResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProjectID    uint   `json:"project_id"`
	AssigneeID   *uint  `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type messageResponse struct {
	ID         uint   `json:"id"`
	Content    string `json:"content"`
	SenderID   uint   `json:"sender_id"`
	SenderName string `json:"sender_name"`
	CreatedAt  string `json:"created_at"`
}

type createProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Visibility  string   `json:"visibility"`
	Tags        []string `json:"tags"`
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProjectID   uint   `json:"project_id" binding:"required"`
	AssigneeID  *uint  `json:"assignee_id"`
	Status      string `json:"status"`
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func toProjectResponse(p models.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		OwnerName:   p.Owner.Name,
		Visibility:  p.Visibility,
		Tags:        utils.SplitTags(p.Tags),
		MemberCount: services.MemberCount(p.ID),
		TaskCounts:  services.TaskCounts(p.ID),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

// List returns the projects the user owns or is a member of.
func (h *ProjectHandler) List(c *gin.Context) {
	user := MustCurrentUser(c)

	var projects []models.Project
	db.DB.Preload("Owner").
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", user.ID).
		Order("projects.created_at DESC").
		Find(&projects)

	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = toProjectResponse(p)
	}
	c.JSON(http.StatusOK, resp)
}

// ListByCollege returns a college's visible projects: public ones, plus
// college_only ones when the viewer belongs to the same college.
func (h *ProjectHandler) ListByCollege(c *gin.Context) {
	collegeName := c.Param("name")

	query := db.DB.Preload("Owner").
		Joins("JOIN users ON projects.owner_id = users.id").
		Where("users.college_name = ?", collegeName)

	user := CurrentUser(c)
	if user != nil && user.CollegeName == collegeName {
		query = query.Where("projects.visibility IN ?",
			[]string{models.VisibilityPublic, models.VisibilityCollegeOnly})
	} else {
		query = query.Where("projects.visibility = ?", models.VisibilityPublic)
	}

	var projects []models.Project
	query.Order("projects.created_at DESC").Find(&projects)

	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = toProjectResponse(p)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	user := MustCurrentUser(c)

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Title is required")
		return
	}

	visibility := req.Visibility
	switch visibility {
	case "":
		visibility = models.VisibilityPublic
	case models.VisibilityPublic, models.VisibilityCollegeOnly, models.VisibilityPrivate:
	default:
		Fail(c, http.StatusBadRequest, "Invalid visibility")
		return
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     user.ID,
		Visibility:  visibility,
		Tags:        utils.JoinTags(req.Tags),
	}
	if err := services.CreateProjectWithOwner(&project); err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	project.Owner = *user
	c.JSON(http.StatusOK, toProjectResponse(project))
}

// memberProject loads the project from the :id param and checks the
// current user belongs to it. Task and chat routes are member-only.
func memberProject(c *gin.Context) (*models.Project, *models.User, bool) {
	user := MustCurrentUser(c)
	projectID := uint(utils.StringToInt(c.Param("id")))

	var project models.Project
	if err := db.DB.First(&project, projectID).Error; err != nil {
		Fail(c, http.StatusNotFound, "Project not found")
		return nil, nil, false
	}
	if !requireMember(c, project.ID, user.ID) {
		return nil, nil, false
	}
	return &project, user, true
}

func requireMember(c *gin.Context, projectID, userID uint) bool {
	var count int64
	db.DB.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count)
	if count == 0 {
		Fail(c, http.StatusForbidden, "Not a member of this project")
		return false
	}
	return true
}

func toTaskResponse(t models.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		AssigneeID:  t.AssigneeID,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.Assignee != nil {
		resp.AssigneeName = t.Assignee.Name
	}
	return resp
}

func (h *ProjectHandler) ListTasks(c *gin.Context) {
	project, _, ok := memberProject(c)
	if !ok {
		return
	}

	var tasks []models.Task
	db.DB.Preload("Assignee").
		Where("project_id = ?", project.ID).
		Order("created_at DESC").
		Find(&tasks)

	resp := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = toTaskResponse(t)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTask handles the flat POST /tasks route; project_id rides in
// the body.
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	user := MustCurrentUser(c)

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Title and project_id are required")
		return
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	if !models.ValidTaskStatus(status) {
		Fail(c, http.StatusBadRequest, "status must be todo, doing or done")
		return
	}

	var project models.Project
	if err := db.DB.First(&project, req.ProjectID).Error; err != nil {
		Fail(c, http.StatusNotFound, "Project not found")
		return
	}
	if !requireMember(c, project.ID, user.ID) {
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   project.ID,
		AssigneeID:  req.AssigneeID,
		Status:      status,
	}
	if err := db.DB.Create(&task).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create task")
		return
	}
	if task.AssigneeID != nil {
		db.DB.Preload("Assignee").First(&task, task.ID)
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateTaskStatus moves a task between board columns via
// PUT /tasks/:id/status?status=. Setting the status it already has is a
// no-op success.
func (h *ProjectHandler) UpdateTaskStatus(c *gin.Context) {
	user := MustCurrentUser(c)

	status := c.Query("status")
	if !models.ValidTaskStatus(status) {
		Fail(c, http.StatusBadRequest, "status must be todo, doing or done")
		return
	}

	taskID := uint(utils.StringToInt(c.Param("id")))
	var task models.Task
	if err := db.DB.First(&task, taskID).Error; err != nil {
		Fail(c, http.StatusNotFound, "Task not found")
		return
	}
	if !requireMember(c, task.ProjectID, user.ID) {
		return
	}

	if task.Status != status {
		if err := db.DB.Model(&task).Update("status", status).Error; err != nil {
			Fail(c, http.StatusInternalServerError, "Failed to update task")
			return
		}
	}

	db.DB.Preload("Assignee").First(&task, task.ID)
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// ListMessages returns the latest page of chat, oldest first so clients
// can append in order.
func (h *ProjectHandler) ListMessages(c *gin.Context) {
	project, _, ok := memberProject(c)
	if !ok {
		return
	}

	var messages []models.Message
	db.DB.Preload("Sender").
		Where("project_id = ?", project.ID).
		Order("created_at DESC, id DESC").
		Limit(chatPageSize).
		Find(&messages)

	// reverse to chronological order
	resp := make([]messageResponse, len(messages))
	for i, m := range messages {
		resp[len(messages)-1-i] = messageResponse{
			ID:         m.ID,
			Content:    m.Content,
			SenderID:   m.SenderID,
			SenderName: m.Sender.Name,
			CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) SendMessage(c *gin.Context) {
	project, user, ok := memberProject(c)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Content is required")
		return
	}

	message := models.Message{
		Content:   req.Content,
		SenderID:  user.ID,
		ProjectID: project.ID,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		ID:         message.ID,
		Content:    message.Content,
		SenderID:   user.ID,
		SenderName: user.Name,
		CreatedAt:  message.CreatedAt.Format(time.RFC3339),
	})
}
