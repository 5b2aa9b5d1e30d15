package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskdesk/config"
	"taskdesk/constants"
	"taskdesk/controllers"
	"taskdesk/middleware"
	"taskdesk/session"
)

func SetupRouter(db *gorm.DB, sessions session.Store, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	secret := []byte(cfg.SessionSecret)

	authController := controllers.AuthController{DB: db, Sessions: sessions, Secret: secret}
	userController := controllers.UserController{DB: db}
	taskController := controllers.TaskController{DB: db}

	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	authed := r.Group("/", middleware.SessionMiddleware(sessions, secret))

	authed.POST("/users", userController.CreateUser)
	authed.GET("/users", userController.ListUsers)

	authed.POST("/tasks", taskController.CreateTask)
	authed.GET("/tasks", taskController.ListTasks)
	authed.GET("/my-tasks", taskController.MyTasks)
	authed.PUT("/tasks/:id", taskController.UpdateTask)
	authed.DELETE("/tasks/:id", taskController.DeleteTask)
	authed.PUT("/tasks/:id/approval",
		middleware.RoleMiddleware(constants.RoleAdmin, constants.RoleManager),
		taskController.Approval)
	authed.PUT("/tasks/:id/status", taskController.UpdateStatus)

	return r
}
