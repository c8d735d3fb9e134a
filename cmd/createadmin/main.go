// Command createadmin registers the first manager account. The generated
// temporary password is printed once and must be changed at first login.
//
// Usage:
//
//	createadmin --document=1020304050 --email=admin@example.com --first-name=Ana --last-name=Rojas
//
// Database settings are read from the environment like the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/agrotiquiza-backend/internal/app"
	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/user"
)

func main() {
	document := flag.String("document", "", "document id of the manager")
	email := flag.String("email", "", "email of the manager")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *document == "" || *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: createadmin --document=ID --email=EMAIL [--first-name=NAME --last-name=NAME]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := user.NewService(logger, userrepo.New(pool), postgres.NewTxManager(pool), cfg.Auth)
	res, err := svc.Register(ctx, user.RegisterInput{
		DocumentID: *document,
		Email:      *email,
		FirstName:  *firstName,
		LastName:   *lastName,
		Role:       domain.RoleManager,
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		fmt.Printf("A user with document %q or email %q already exists.\n", *document, *email)
		os.Exit(1)
	case err != nil:
		log.Fatalf("register manager: %v", err)
	}

	fmt.Printf("Manager %s created (id %d).\n", res.User.FullName(), res.User.ID)
	fmt.Printf("Temporary password: %s\n", res.TempPassword)
}
