package routes

import (
	"github.com/Darkphantom323/LifePulse/controllers"
	"github.com/Darkphantom323/LifePulse/middlewares"
	"github.com/Darkphantom323/LifePulse/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/signin", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())

	user := protected.Group("/user")
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/profile/picture", controllers.UploadProfilePicture)
		user.DELETE("/profile/picture", controllers.DeleteProfilePicture)
		user.POST("/profile/upload-url", controllers.GetUploadURL)
		user.POST("/streak", controllers.UpdateStreak)
	}

	goals := protected.Group("/goals")
	{
		goals.POST("", controllers.CreateGoal)
		goals.GET("", controllers.GetGoals)
		goals.GET("/:id", controllers.GetGoal)
		goals.PUT("/:id", controllers.UpdateGoal)
		goals.PUT("/:id/progress", controllers.UpdateGoalProgress)
		goals.POST("/:id/progress", controllers.UpdateGoalProgress)
		goals.DELETE("/:id", controllers.DeleteGoal)
	}

	hydration := protected.Group("/hydration")
	{
		hydration.POST("", controllers.AddHydrationEntry)
		hydration.GET("", controllers.GetHydrationEntries)
		hydration.GET("/today", controllers.GetTodayHydration)
		hydration.GET("/stats", controllers.GetHydrationDayStats)
		hydration.DELETE("/:id", controllers.DeleteHydrationEntry)
		hydration.DELETE("", controllers.DeleteLastHydrationEntry)
	}

	meditation := protected.Group("/meditation")
	{
		meditation.POST("", controllers.AddMeditationSession)
		meditation.GET("", controllers.GetMeditationSessions)
		meditation.GET("/today", controllers.GetTodayMeditation)
		meditation.DELETE("/:id", controllers.DeleteMeditationSession)
	}

	schedule := protected.Group("/schedule")
	{
		schedule.POST("", controllers.CreateScheduleEvent)
		schedule.GET("", controllers.GetScheduleEvents)
		schedule.GET("/upcoming", controllers.GetUpcomingScheduleEvents)
		schedule.GET("/:id", controllers.GetScheduleEvent)
		schedule.PUT("/:id", controllers.UpdateScheduleEvent)
		schedule.DELETE("/:id", controllers.DeleteScheduleEvent)
	}

	protected.GET("/dashboard", controllers.GetDashboard)

	rc := controllers.NewRealtimeController(rt)
	protected.GET("/ws", rc.ActivityWS)

	return r
}
