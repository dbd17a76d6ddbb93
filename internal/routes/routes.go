package routes

import (
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// Gateway webhook must stay reachable without a token.
		api.POST("/payment/notification", handlers.HandleMidtransNotification)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetProfile)
			protected.GET("/dashboard", handlers.GetDashboardStats)

			protected.POST("/patients", handlers.CreatePatient)
			protected.GET("/patients", handlers.GetPatients)
			protected.GET("/patients/:id", handlers.GetPatient)
			protected.PUT("/patients/:id", handlers.UpdatePatient)
			protected.POST("/patients/:id/treatments", handlers.AddTreatmentLog)
			protected.PATCH("/treatments/:logId/paid", handlers.MarkTreatmentPaid)
			protected.POST("/treatments/:logId/checkout", handlers.CreateTreatmentCheckout)

			protected.POST("/doctors", handlers.CreateDoctor)
			protected.GET("/doctors", handlers.GetDoctors)
			protected.GET("/doctors/:id", handlers.GetDoctor)
			protected.PUT("/doctors/:id", handlers.UpdateDoctor)

			protected.POST("/appointments", handlers.CreateAppointment)
			protected.GET("/appointments", handlers.GetAppointments)
			protected.PATCH("/appointments/:id/status", handlers.UpdateAppointmentStatus)

			protected.GET("/reports", handlers.GetReport)
			protected.GET("/reports/export", handlers.ExportReport)

			// Destructive operations are admin only.
			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				admin.DELETE("/patients/:id", handlers.DeletePatient)
				admin.DELETE("/doctors/:id", handlers.DeleteDoctor)
				admin.DELETE("/appointments/:id", handlers.DeleteAppointment)
			}
		}
	}
}
