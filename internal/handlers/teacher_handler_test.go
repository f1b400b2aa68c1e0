package handlers

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edudesk/school-admin-api/internal/models"
)

func seedTeacher(t *testing.T, env *testEnv, name, email string) models.Teacher {
	t.Helper()
	teacher := models.Teacher{Name: name, Email: email, Course: "Algebra", Charges: 120}
	if err := env.teachers.Create(context.Background(), &teacher); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	return teacher
}

func TestCreateTeacher(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/teacher/createteachers", env.authToken(t), map[string]interface{}{
		"name":    "Grace Hopper",
		"email":   "grace@example.com",
		"course":  "Compilers",
		"charges": 250,
	})
	requireStatus(t, rec, http.StatusCreated)

	stored, _ := env.teachers.List(context.Background())
	if len(stored) != 1 || stored[0].Course != "Compilers" {
		t.Fatalf("expected the teacher persisted, got %v", stored)
	}
}

func TestCreateTeacherDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	seedTeacher(t, env, "First", "dup@example.com")

	rec := env.do(t, http.MethodPost, "/teacher/createteachers", env.authToken(t), map[string]interface{}{
		"name":    "Second",
		"email":   "dup@example.com",
		"course":  "Geometry",
		"charges": 90,
	})
	requireStatus(t, rec, http.StatusConflict)

	stored, _ := env.teachers.List(context.Background())
	if len(stored) != 1 {
		t.Fatalf("expected 1 teacher after duplicate create, got %d", len(stored))
	}
}

func TestGetTeacherByID(t *testing.T) {
	env := newTestEnv(t)
	token := env.authToken(t)
	teacher := seedTeacher(t, env, "Known", "known@example.com")

	rec := env.do(t, http.MethodGet, "/teacher/teachers/"+teacher.ID.Hex(), token, nil)
	requireStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	got, ok := body["teacher"].(map[string]interface{})
	if !ok || got["email"] != "known@example.com" {
		t.Fatalf("expected the seeded teacher, got %v", body)
	}

	rec = env.do(t, http.MethodGet, "/teacher/teachers/not-a-hex-id", token, nil)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDeleteMissingTeacherLeavesCollectionUnchanged(t *testing.T) {
	env := newTestEnv(t)
	token := env.authToken(t)
	seedTeacher(t, env, "Survivor", "survivor@example.com")

	rec := env.do(t, http.MethodDelete, "/teacher/delteachers/"+primitive.NewObjectID().Hex(), token, nil)
	requireStatus(t, rec, http.StatusNotFound)

	// Verify via a subsequent list call.
	rec = env.do(t, http.MethodGet, "/teacher/getteachers", token, nil)
	requireStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	teachers, ok := body["teachers"].([]interface{})
	if !ok || len(teachers) != 1 {
		t.Fatalf("expected the collection unchanged with 1 teacher, got %v", body["teachers"])
	}
}

func TestUpdateTeacherFullReplace(t *testing.T) {
	env := newTestEnv(t)
	teacher := seedTeacher(t, env, "Before", "before@example.com")

	rec := env.do(t, http.MethodPut, "/teacher/updateteachers/"+teacher.ID.Hex(), env.authToken(t), map[string]interface{}{
		"name":    "After",
		"email":   "after@example.com",
		"course":  "Topology",
		"charges": 300,
	})
	requireStatus(t, rec, http.StatusOK)

	stored, err := env.teachers.GetByID(context.Background(), teacher.ID)
	if err != nil {
		t.Fatalf("get teacher: %v", err)
	}
	if stored.Name != "After" || stored.Email != "after@example.com" || stored.Charges != 300 {
		t.Fatalf("replace did not take effect: %+v", stored)
	}
}
