package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/edudesk/school-admin-api/internal/repository"
	"github.com/edudesk/school-admin-api/internal/services"
)

// Options carries the knobs handlers need beyond their collaborators.
type Options struct {
	JWTSecret  []byte
	JWTExpiry  time.Duration
	BcryptCost int
	// EchoResetToken includes the reset token in the forgot-password response.
	// Dev-mode convenience only; never enable with a real delivery webhook.
	EchoResetToken bool
}

// Handler holds every collaborator the endpoint methods need.
type Handler struct {
	Users    repository.UserRepository
	Students repository.StudentRepository
	Teachers repository.TeacherRepository
	Courses  repository.CourseRepository
	Tokens   services.ResetTokenStore
	Mailer   services.ResetNotifier
	Opts     Options
	Log      zerolog.Logger
}

func NewHandler(
	users repository.UserRepository,
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	courses repository.CourseRepository,
	tokens services.ResetTokenStore,
	mailer services.ResetNotifier,
	opts Options,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		Users:    users,
		Students: students,
		Teachers: teachers,
		Courses:  courses,
		Tokens:   tokens,
		Mailer:   mailer,
		Opts:     opts,
		Log:      log,
	}
}
