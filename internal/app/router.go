package app

import (
	"bananalearn_backend/docs"
	"bananalearn_backend/internal/config"
	"bananalearn_backend/internal/middleware"
	"bananalearn_backend/internal/model"
	"bananalearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/profile", c.auth.GetProfile)
		authorized.GET("/leaderboard", c.gamification.GetLeaderboard)
		authorized.GET("/student/badges", c.gamification.GetMyBadges)

		authorized.GET("/courses", c.course.ListCourses)
		authorized.GET("/courses/:id", c.course.GetCourse)
		authorized.POST("/courses/:id/complete", c.course.CompleteCourse)

		authorized.GET("/quizzes/:id", c.quiz.GetQuiz)

		sessions := authorized.Group("/sessions")
		{
			sessions.POST("", c.session.StartSession)
			sessions.POST("/join", c.session.JoinSession)
			sessions.GET("/:id/status", c.session.GetStatus)
			sessions.POST("/:id/answer", c.session.SubmitAnswer)
			sessions.POST("/:id/advance", c.session.AdvanceSession)
			sessions.POST("/:id/finish", c.session.FinishSession)
		}

		duels := authorized.Group("/duels")
		{
			duels.POST("", c.duel.CreateDuel)
			duels.GET("", c.duel.ListDuels)
			duels.GET("/:id", c.duel.GetDuel)
			duels.POST("/:id/accept", c.duel.AcceptDuel)
			duels.POST("/:id/result", c.duel.SubmitResult)
		}

		clans := authorized.Group("/clans")
		{
			clans.POST("", c.clan.CreateClan)
			clans.GET("", c.clan.ListClans)
			clans.GET("/:id", c.clan.GetClan)
			clans.POST("/:id/join", c.clan.JoinClan)
			clans.POST("/:id/contribute", c.clan.Contribute)
		}
		authorized.GET("/clan-wars/ranking", c.clan.WarRanking)

		teacher := authorized.Group("/teacher")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.GET("/courses", c.course.ListMyCourses)
			teacher.POST("/courses", c.course.CreateCourse)
			teacher.PUT("/courses/:id", c.course.UpdateCourse)
			teacher.DELETE("/courses/:id", c.course.DeleteCourse)

			teacher.GET("/quizzes", c.quiz.ListMyQuizzes)
			teacher.POST("/quizzes", c.quiz.CreateQuiz)
			teacher.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
			teacher.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)
		}

		admin := authorized.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/users", c.user.ListUsers)
			admin.GET("/users/:id", c.user.GetUser)
			admin.PUT("/users/:id", c.user.UpdateUser)
			admin.DELETE("/users/:id", c.user.DeleteUser)
			admin.POST("/users/:id/reset-rewards", c.user.ResetRewards)

			admin.GET("/badges", c.badge.ListBadges)
			admin.POST("/badges", c.badge.CreateBadge)
			admin.POST("/badges/upload", c.badge.UploadIcon)
			admin.PUT("/badges/:id", c.badge.UpdateBadge)
			admin.DELETE("/badges/:id", c.badge.DeleteBadge)
		}
	}
}
