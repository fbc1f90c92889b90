// Command addadmin interactively adds an administrator record to the
// database.  It is a standalone utility run by an operator, not part of
// the server process.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/svce/hostel-management/internal/config"
	"github.com/svce/hostel-management/internal/database"
	"github.com/svce/hostel-management/internal/repository"
	"github.com/svce/hostel-management/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	fmt.Println("Add New Admin User")
	fmt.Println("==================")
	fmt.Println("This script will add a new admin user to the database.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	username := prompt(reader, "Enter username: ")
	password := prompt(reader, "Enter password: ")
	email := prompt(reader, "Enter email: ")

	if username == "" || password == "" || email == "" {
		fmt.Println("All fields are required.")
		os.Exit(1)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admins := repository.NewAdminRepo(db)
	if err := admins.Create(ctx, username, hash, email); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			fmt.Printf("Admin user '%s' already exists. Choose a different username.\n", username)
			os.Exit(1)
		}
		log.Fatalf("add admin user: %v", err)
	}

	fmt.Printf("Admin user '%s' added successfully!\n", username)
	fmt.Printf("Login with username: %s and your chosen password\n", username)
}

func prompt(r *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
