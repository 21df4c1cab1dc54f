package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"timescan.app/timescan/security"
)

func main() {
	name := flag.String("name", "operator", "operator name embedded in the token")
	role := flag.String("role", "admin", "operator role")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("SIGNING_SECRET")
	if secret == "" {
		log.Fatal("SIGNING_SECRET is not set")
	}

	token, err := security.CreateOperatorToken(&security.Operator{
		ID:   1,
		Name: *name,
		Role: *role,
	}, secret, *ttl)
	if err != nil {
		log.Fatalf("failed to create token: %v", err)
	}

	fmt.Println(token)
}
