package router

import (
	"prodiny/internal/handlers"
	"prodiny/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every API route onto the engine. LoadUser runs
// on everything so optional-auth routes can see the viewer; routes that
// require a login add AuthRequired.
func RegisterRoutes(r *gin.Engine) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	voteHandler := handlers.NewVoteHandler()
	subgroupHandler := handlers.NewSubgroupHandler()
	collegeHandler := handlers.NewCollegeHandler()
	projectHandler := handlers.NewProjectHandler()
	adminHandler := handlers.NewAdminHandler()

	r.Use(middleware.LoadUser())

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/me", middleware.AuthRequired(), authHandler.Me)
	r.POST("/profile-setup", middleware.AuthRequired(), authHandler.ProfileSetup)

	posts := r.Group("/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.GET("/popular", postHandler.ListPopular)
		posts.POST("", middleware.AuthRequired(), postHandler.Create)
		posts.GET("/:id/comments", postHandler.ListComments)
		posts.POST("/:id/comments", middleware.AuthRequired(), postHandler.CreateComment)
		posts.PUT("/:id/vote", middleware.AuthRequired(), voteHandler.Vote)
	}
	r.POST("/comments", middleware.AuthRequired(), postHandler.CreateCommentLegacy)

	subgroups := r.Group("/subgroups")
	{
		subgroups.GET("", subgroupHandler.List)
		subgroups.POST("/:id/join", middleware.AuthRequired(), subgroupHandler.Join)
	}

	colleges := r.Group("/colleges")
	{
		colleges.GET("", collegeHandler.List)
		colleges.POST("", middleware.AuthRequired(), collegeHandler.Create)
	}
	r.GET("/college/:name/posts", postHandler.ListByCollege)
	r.GET("/college/:name/projects", projectHandler.ListByCollege)

	projects := r.Group("/projects", middleware.AuthRequired())
	{
		projects.GET("", projectHandler.List)
		projects.POST("", projectHandler.Create)
		projects.GET("/:id/tasks", projectHandler.ListTasks)
		projects.GET("/:id/messages", projectHandler.ListMessages)
		projects.POST("/:id/messages", projectHandler.SendMessage)
	}
	r.POST("/tasks", middleware.AuthRequired(), projectHandler.CreateTask)
	r.PUT("/tasks/:id/status", middleware.AuthRequired(), projectHandler.UpdateTaskStatus)

	r.GET("/admin/stats", middleware.AuthRequired(), adminHandler.Stats)
}
