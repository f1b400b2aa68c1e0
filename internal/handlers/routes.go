package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/edudesk/school-admin-api/internal/middleware"
)

// RegisterRoutes wires every endpoint onto the router. The entity groups all
// sit behind the auth middleware; only the credential endpoints are open.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authRequired := middleware.AuthRequired(h.Opts.JWTSecret)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", h.Signup)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/forgotpassword", h.ForgotPassword)
		authRoutes.POST("/reset-password", h.ResetPassword)
		authRoutes.GET("/getuser", authRequired, h.GetUsers)
	}

	studentRoutes := r.Group("/student")
	studentRoutes.Use(authRequired)
	{
		studentRoutes.POST("/creatstudent", h.CreateStudent)
		studentRoutes.GET("/getstudent", h.GetStudents)
		studentRoutes.PUT("/updatestudent/:id", h.UpdateStudent)
		studentRoutes.DELETE("/deletestudent/:id", h.DeleteStudent)
	}

	teacherRoutes := r.Group("/teacher")
	teacherRoutes.Use(authRequired)
	{
		teacherRoutes.POST("/createteachers", h.CreateTeacher)
		teacherRoutes.GET("/getteachers", h.GetTeachers)
		teacherRoutes.GET("/teachers/:id", h.GetTeacherByID)
		teacherRoutes.PUT("/updateteachers/:id", h.UpdateTeacher)
		teacherRoutes.DELETE("/delteachers/:id", h.DeleteTeacher)
	}

	courseRoutes := r.Group("/course")
	courseRoutes.Use(authRequired)
	{
		courseRoutes.POST("/addcourse", h.AddCourse)
		courseRoutes.GET("/getcourse", h.GetCourses)
		courseRoutes.PUT("/updatecourse/:id", h.UpdateCourse)
		courseRoutes.DELETE("/deletecourse/:id", h.DeleteCourse)
	}
}
