// Package repository provides data access for each entity collection.
// Handlers depend on the interfaces; the Mongo types are the production
// implementations.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edudesk/school-admin-api/internal/models"
)

var (
	// ErrNotFound is returned when an identifier resolves to no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	List(ctx context.Context) ([]models.User, error)
}

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]models.Student, error)
	Replace(ctx context.Context, id primitive.ObjectID, student *models.Student) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	List(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error)
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
	Replace(ctx context.Context, id primitive.ObjectID, teacher *models.Teacher) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]models.Course, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*models.Course, error)
	Replace(ctx context.Context, id primitive.ObjectID, course *models.Course) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
