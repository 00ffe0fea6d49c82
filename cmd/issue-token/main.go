// Command issue-token prints a bearer token signed with the configured secret.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"communityHub/internal/config"
	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/models"
)

func main() {
	sub := flag.String("sub", "", "user id to issue the token for")
	admin := flag.Bool("admin", false, "grant administrator rights")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to auth.token_ttl")
	flag.Parse()

	if *sub == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad()

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.New(cfg.Auth.JWTSecret, cfg.Auth.Issuer, lifetime).Issue(models.User{ID: *sub, IsAdmin: *admin})
	if err != nil {
		log.Fatalf("cannot issue token: %s", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
}
