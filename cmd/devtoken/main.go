// Command devtoken prints a signed access token for an existing user. It is
// a local development aid; production clients obtain tokens elsewhere.
//
// Usage:
//
//	devtoken --username=alice
//	devtoken --user=<uuid>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/tripvote-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tripvote-backend/internal/auth"
	"github.com/heartmarshall/tripvote-backend/internal/config"
	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the user")
	userID := flag.String("user", "", "id of the user")
	flag.Parse()

	if (*username == "") == (*userID == "") {
		fmt.Fprintln(os.Stderr, "Usage: devtoken --username=<name> | --user=<uuid>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)

	var u *domain.User
	if *userID != "" {
		id, perr := uuid.Parse(*userID)
		if perr != nil {
			log.Fatalf("invalid user id: %v", perr)
		}
		u, err = users.GetByID(ctx, id)
	} else {
		u, err = users.GetByUsername(ctx, *username)
	}
	if err != nil {
		log.Fatalf("find user: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).GenerateAccessToken(u.ID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
