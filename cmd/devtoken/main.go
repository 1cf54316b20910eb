// cmd/devtoken/main.go
// Prints a signed access token for local testing against an auth-enabled server.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lingo_progress/internal/config"
	"lingo_progress/internal/model"
)

func main() {
	userID := flag.String("user", "", "user id placed in the sub claim")
	name := flag.String("name", "", "display name")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to jwt.access_token_ttl)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: devtoken -user <id> [-name <name>] [-ttl 1h]")
		os.Exit(2)
	}

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}
	if config.Cfg.JWT.SecretKey == "" {
		slog.Error("jwt.secret_key is not configured")
		os.Exit(1)
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = config.Cfg.JWT.AccessTokenTTL
	}

	now := time.Now()
	claims := model.JWTCustomClaims{
		Name: *name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *userID,
			Issuer:    config.Cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Cfg.JWT.SecretKey))
	if err != nil {
		slog.Error("Error signing token", "error", err)
		os.Exit(1)
	}
	fmt.Println(signed)
}
