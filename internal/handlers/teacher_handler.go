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

// TeacherRequest is the payload for creating or replacing a teacher.
type TeacherRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Course  string  `json:"course" binding:"required"`
	Charges float64 `json:"charges" binding:"required,gte=0"`
}

// CreateTeacher handles POST /teacher/createteachers.
func (h *Handler) CreateTeacher(c *gin.Context) {
	var req TeacherRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	// Pre-check for the friendly message; the unique email index decides.
	if _, err := h.Teachers.FindByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Teacher with this email already exists"})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		h.internalError(c, err, "create teacher: lookup email")
		return
	}

	teacher := models.Teacher{
		Name:    req.Name,
		Email:   req.Email,
		Course:  req.Course,
		Charges: req.Charges,
	}
	if err := h.Teachers.Create(c.Request.Context(), &teacher); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Teacher with this email already exists"})
			return
		}
		h.internalError(c, err, "create teacher")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Teacher created successfully", "teacher": teacher})
}

// GetTeachers handles GET /teacher/getteachers.
func (h *Handler) GetTeachers(c *gin.Context) {
	teachers, err := h.Teachers.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "list teachers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "teachers": teachers})
}

// GetTeacherByID handles GET /teacher/teachers/:id.
func (h *Handler) GetTeacherByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid teacher ID"})
		return
	}

	teacher, err := h.Teachers.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Teacher not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "get teacher")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "teacher": teacher})
}

// UpdateTeacher handles PUT /teacher/updateteachers/:id. Full-document replace.
func (h *Handler) UpdateTeacher(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid teacher ID"})
		return
	}

	var req TeacherRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	teacher := models.Teacher{
		Name:    req.Name,
		Email:   req.Email,
		Course:  req.Course,
		Charges: req.Charges,
	}
	if err := h.Teachers.Replace(c.Request.Context(), id, &teacher); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Teacher not found"})
		case errors.Is(err, repository.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Teacher with this email already exists"})
		default:
			h.internalError(c, err, "update teacher")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Teacher updated successfully", "teacher": teacher})
}

// DeleteTeacher handles DELETE /teacher/delteachers/:id. Hard delete.
func (h *Handler) DeleteTeacher(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid teacher ID"})
		return
	}

	if err := h.Teachers.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Teacher not found"})
			return
		}
		h.internalError(c, err, "delete teacher")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Teacher deleted successfully"})
}
