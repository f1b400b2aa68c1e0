package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/edudesk/school-admin-api/internal/models"
	"github.com/edudesk/school-admin-api/internal/utils"
)

func seedUser(t *testing.T, env *testEnv, email, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{FirstName: "Jean", LastName: "Rabe", Email: email, Password: hash}
	if err := env.users.Create(context.Background(), &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestSignupThenLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/signup", "", map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "s3cret-pass",
	})
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "s3cret-pass",
	})
	requireStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	if token, _ := body["token"].(string); token == "" {
		t.Fatal("expected a session token in the login response")
	}
	if body["firstName"] != "Ada" {
		t.Fatalf("expected firstName Ada, got %v", body["firstName"])
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "taken@example.com", "whatever1")

	rec := env.do(t, http.MethodPost, "/auth/signup", "", map[string]interface{}{
		"firstName": "Other",
		"lastName":  "Person",
		"email":     "taken@example.com",
		"password":  "different1",
	})
	requireStatus(t, rec, http.StatusConflict)

	users, _ := env.users.List(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected 1 user after duplicate signup, got %d", len(users))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "staff@example.com", "correct-horse")

	rec := env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "staff@example.com",
		"password": "wrong-horse",
	})
	requireStatus(t, rec, http.StatusUnauthorized)

	body := decode(t, rec)
	if _, ok := body["token"]; ok {
		t.Fatal("no token should be issued on a failed login")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})
	requireStatus(t, rec, http.StatusNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "forgetful@example.com", "old-password")

	rec := env.do(t, http.MethodPost, "/auth/forgotpassword", "", map[string]interface{}{
		"email": "forgetful@example.com",
	})
	requireStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	token, _ := body["resetToken"].(string)
	if token == "" {
		t.Fatal("expected an echoed reset token in test mode")
	}
	if len(env.mailer.sent) != 1 || env.mailer.sent[0] != "forgetful@example.com" {
		t.Fatalf("expected the mailer to be called once for the user, got %v", env.mailer.sent)
	}

	rec = env.do(t, http.MethodPost, "/auth/reset-password", "", map[string]interface{}{
		"email":       "forgetful@example.com",
		"token":       token,
		"newPassword": "new-password",
	})
	requireStatus(t, rec, http.StatusOK)

	// The new password works, the old one does not.
	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "forgetful@example.com",
		"password": "new-password",
	})
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "forgetful@example.com",
		"password": "old-password",
	})
	requireStatus(t, rec, http.StatusUnauthorized)

	// The token is single-use.
	rec = env.do(t, http.MethodPost, "/auth/reset-password", "", map[string]interface{}{
		"email":       "forgetful@example.com",
		"token":       token,
		"newPassword": "another-password",
	})
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestResetPasswordTokenEmailMismatch(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "alice@example.com", "alice-pass")
	seedUser(t, env, "mallory@example.com", "mallory-pass")

	rec := env.do(t, http.MethodPost, "/auth/forgotpassword", "", map[string]interface{}{
		"email": "alice@example.com",
	})
	requireStatus(t, rec, http.StatusOK)
	token, _ := decode(t, rec)["resetToken"].(string)

	// A token issued for alice must not reset mallory's password.
	rec = env.do(t, http.MethodPost, "/auth/reset-password", "", map[string]interface{}{
		"email":       "mallory@example.com",
		"token":       token,
		"newPassword": "hijacked-pass",
	})
	requireStatus(t, rec, http.StatusUnauthorized)

	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "mallory@example.com",
		"password": "mallory-pass",
	})
	requireStatus(t, rec, http.StatusOK)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/forgotpassword", "", map[string]interface{}{
		"email": "ghost@example.com",
	})
	requireStatus(t, rec, http.StatusNotFound)

	if len(env.mailer.sent) != 0 {
		t.Fatal("no reset code should be sent for an unknown email")
	}
}

func TestGetUsersRequiresToken(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "staff@example.com", "whatever1")

	rec := env.do(t, http.MethodGet, "/auth/getuser", "", nil)
	requireStatus(t, rec, http.StatusUnauthorized)

	rec = env.do(t, http.MethodGet, "/auth/getuser", env.authToken(t), nil)
	requireStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	users, ok := body["users"].([]interface{})
	if !ok || len(users) != 1 {
		t.Fatalf("expected 1 user in response, got %v", body["users"])
	}
	if _, leaked := users[0].(map[string]interface{})["password"]; leaked {
		t.Fatal("password hash must not appear in the user list")
	}
}
