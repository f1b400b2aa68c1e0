package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edudesk/school-admin-api/internal/models"
	"github.com/edudesk/school-admin-api/internal/repository"
	"github.com/edudesk/school-admin-api/internal/validation"
)

// StudentRequest is the payload for creating or replacing a student.
type StudentRequest struct {
	Name       string   `json:"Name" binding:"required"`
	Department string   `json:"Department" binding:"required"`
	Grade      string   `json:"grade" binding:"required"`
	Courses    []string `json:"courses"`
	Status     string   `json:"status" binding:"required,oneof=Active Inactive"`
}

// validateStudent applies the domain rules and returns the student to store.
func validateStudent(req *StudentRequest) (*models.Student, error) {
	grade, err := validation.NormalizeGrade(req.Grade)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckCourseSelection(req.Courses); err != nil {
		return nil, err
	}
	courses := req.Courses
	if courses == nil {
		courses = []string{}
	}
	return &models.Student{
		Name:       req.Name,
		Department: req.Department,
		Grade:      grade,
		Courses:    courses,
		Status:     req.Status,
	}, nil
}

// CreateStudent handles POST /student/creatstudent.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req StudentRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	student, err := validateStudent(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.Students.Create(c.Request.Context(), student); err != nil {
		h.internalError(c, err, "create student")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Student created successfully", "student": student})
}

// GetStudents handles GET /student/getstudent. Returns the whole collection.
func (h *Handler) GetStudents(c *gin.Context) {
	students, err := h.Students.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "list students")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "students": students})
}

// UpdateStudent handles PUT /student/updatestudent/:id. Full-document replace.
func (h *Handler) UpdateStudent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid student ID"})
		return
	}

	var req StudentRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	student, err := validateStudent(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.Students.Replace(c.Request.Context(), id, student); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
			return
		}
		h.internalError(c, err, "update student")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student updated successfully", "student": student})
}

// DeleteStudent handles DELETE /student/deletestudent/:id. Hard delete.
func (h *Handler) DeleteStudent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid student ID"})
		return
	}

	if err := h.Students.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
			return
		}
		h.internalError(c, err, "delete student")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student deleted successfully"})
}
