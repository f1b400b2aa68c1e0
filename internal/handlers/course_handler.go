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

// CourseRequest is the payload for creating or replacing a course.
type CourseRequest struct {
	Name      string  `json:"name" binding:"required"`
	Institute string  `json:"institute" binding:"required"`
	Price     float64 `json:"price" binding:"required,gte=0"`
}

// courseNameAvailable checks the candidate name against every stored course,
// skipping the record under edit (pass primitive.NilObjectID on create).
func (h *Handler) courseNameAvailable(c *gin.Context, name string, excludeID primitive.ObjectID) (bool, error) {
	existing, err := h.Courses.List(c.Request.Context())
	if err != nil {
		return false, err
	}
	names := make(map[string]string, len(existing))
	for _, course := range existing {
		names[course.ID.Hex()] = course.Name
	}
	exclude := ""
	if !excludeID.IsZero() {
		exclude = excludeID.Hex()
	}
	return validation.UniqueName(name, names, exclude), nil
}

// AddCourse handles POST /course/addcourse.
func (h *Handler) AddCourse(c *gin.Context) {
	var req CourseRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	// Pre-check for the friendly message; the collated unique index decides.
	ok, err := h.courseNameAvailable(c, req.Name, primitive.NilObjectID)
	if err != nil {
		h.internalError(c, err, "add course: check name")
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Course with this name already exists"})
		return
	}

	course := models.Course{
		Name:      req.Name,
		Institute: req.Institute,
		Price:     req.Price,
	}
	if err := h.Courses.Create(c.Request.Context(), &course); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Course with this name already exists"})
			return
		}
		h.internalError(c, err, "add course")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Course added successfully", "course": course})
}

// GetCourses handles GET /course/getcourse.
func (h *Handler) GetCourses(c *gin.Context) {
	courses, err := h.Courses.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "list courses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "courses": courses})
}

// UpdateCourse handles PUT /course/updatecourse/:id. Full-document replace.
func (h *Handler) UpdateCourse(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid course ID"})
		return
	}

	var req CourseRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	ok, err := h.courseNameAvailable(c, req.Name, id)
	if err != nil {
		h.internalError(c, err, "update course: check name")
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Course with this name already exists"})
		return
	}

	course := models.Course{
		Name:      req.Name,
		Institute: req.Institute,
		Price:     req.Price,
	}
	if err := h.Courses.Replace(c.Request.Context(), id, &course); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Course not found"})
		case errors.Is(err, repository.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Course with this name already exists"})
		default:
			h.internalError(c, err, "update course")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Course updated successfully", "course": course})
}

// DeleteCourse handles DELETE /course/deletecourse/:id. Hard delete; students
// holding the course name keep the stale copy (no cascading update).
func (h *Handler) DeleteCourse(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid course ID"})
		return
	}

	if err := h.Courses.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Course not found"})
			return
		}
		h.internalError(c, err, "delete course")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Course deleted successfully"})
}
