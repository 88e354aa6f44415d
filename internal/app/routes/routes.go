package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/internhub/internal/app/controllers"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	assignmentController *controllers.AssignmentController,
	internshipController *controllers.InternshipController,
	notificationController *controllers.NotificationController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Student routes
		students := authenticated.Group("/students")
		{
			students.GET("/me", studentController.GetMyProfile)
			students.PATCH("/me", studentController.UpdateMyProfile)
			students.GET("/me/applications", studentController.ListMyApplications)
			students.POST("/me/applications", studentController.Apply)

			// Staff-only student routes
			studentsStaff := students.Group("")
			studentsStaff.Use(authMiddleware.RoleRequired(
				string(models.RoleAdmin), string(models.RoleManagement), string(models.RoleFaculty)))
			{
				studentsStaff.GET("", studentController.ListStudents)
				studentsStaff.GET("/:id", studentController.GetStudent)
			}

			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RoleRequired(
				string(models.RoleAdmin), string(models.RoleManagement)))
			{
				studentsAdmin.PATCH("/:id/applications/:internshipId/status", studentController.UpdateApplicationStatus)
			}
		}

		// Faculty routes
		faculty := authenticated.Group("/faculty")
		{
			faculty.GET("", facultyController.ListFaculty)
			faculty.GET("/me", facultyController.GetMyProfile)
			faculty.PATCH("/me", facultyController.UpdateMyProfile)
			faculty.GET("/:id/students", facultyController.ListAssignedStudents)

			// Notification feed for the calling mentor
			notifications := faculty.Group("/notifications")
			notifications.Use(authMiddleware.RoleRequired(string(models.RoleFaculty)))
			{
				notifications.GET("", notificationController.List)
				notifications.GET("/stream", notificationController.Stream)
				notifications.PATCH("/:id/read", notificationController.MarkRead)
				notifications.POST("/read-all", notificationController.MarkAllRead)
			}
		}

		// Internship routes
		internships := authenticated.Group("/internships")
		{
			internships.GET("", internshipController.List)
			internships.GET("/:id", internshipController.Get)

			internshipsAdmin := internships.Group("")
			internshipsAdmin.Use(authMiddleware.RoleRequired(
				string(models.RoleAdmin), string(models.RoleManagement)))
			{
				internshipsAdmin.POST("", internshipController.Create)
				internshipsAdmin.PATCH("/:id", internshipController.Update)
				internshipsAdmin.DELETE("/:id", internshipController.Delete)
			}
		}

		// Mentor assignment routes (admin only)
		assignments := authenticated.Group("/assignments")
		assignments.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			assignments.GET("/proposal", assignmentController.GenerateProposal)
			assignments.POST("/confirm", assignmentController.ConfirmAssignments)
		}

		// Report routes (staff and viewers)
		reports := authenticated.Group("/reports")
		reports.Use(authMiddleware.RoleRequired(
			string(models.RoleAdmin), string(models.RoleManagement), string(models.RoleViewer)))
		{
			reports.GET("/overview", reportController.GetOverviewStats)
			reports.GET("/narrative", reportController.GenerateNarrativeReport)
		}
	}
}
