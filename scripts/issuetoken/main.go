package main

import (
	"flag"
	"fmt"
	"os"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/model"
)

// Prints a signed session token for local testing, using JWT_SECRET and JWT_TTL.
func main() {
	userID := flag.String("user", "user-1", "user ID")
	email := flag.String("email", "", "user email")
	role := flag.String("role", string(model.RoleCustomer), "customer or admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	token, err := tokens.Issue(&model.User{ID: *userID, Email: *email, Role: model.Role(*role)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
