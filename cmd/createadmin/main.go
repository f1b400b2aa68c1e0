package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/edudesk/school-admin-api/internal/config"
	"github.com/edudesk/school-admin-api/internal/database"
	"github.com/edudesk/school-admin-api/internal/logger"
	"github.com/edudesk/school-admin-api/internal/models"
	"github.com/edudesk/school-admin-api/internal/repository"
	"github.com/edudesk/school-admin-api/internal/utils"
	"github.com/edudesk/school-admin-api/internal/validation"
)

// Seeds the first staff account so there is someone who can log in.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := database.NewMongoDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	users := repository.NewMongoUserRepository(db)

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("=== Create Staff Account ===")

	fmt.Print("First name: ")
	firstName, _ := reader.ReadString('\n')
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		fmt.Println("Error: first name is required")
		return
	}

	fmt.Print("Last name: ")
	lastName, _ := reader.ReadString('\n')
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		fmt.Println("Error: last name is required")
		return
	}

	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: email is required")
		return
	}

	existing, err := users.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list users")
	}
	emails := make([]string, 0, len(existing))
	for _, u := range existing {
		emails = append(emails, u.Email)
	}
	if !validation.UniqueEmail(email, emails) {
		fmt.Println("Error: a user with this email already exists")
		return
	}

	fmt.Print("Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	password := string(bytePassword)
	if len(password) < 6 {
		fmt.Println("Error: password must be at least 6 characters")
		return
	}

	hashed, err := utils.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
	}
	if err := users.Create(ctx, &user); err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nSuccess! Staff account '%s %s' (%s) created with ID %s\n", firstName, lastName, email, user.ID.Hex())
}
