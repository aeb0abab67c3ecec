//go:build ignore

// This script generates secrets for API key and JWT authentication.
// Run with: go run scripts/generate_keys.go [-subject name] [-ttl 24h]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/book-pricing-service/internal/service"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	subject := flag.String("subject", "dev-client", "subject of the development token")
	issuer := flag.String("issuer", "book-pricing-service", "issuer of the development token")
	ttl := flag.Duration("ttl", 24*time.Hour, "lifetime of the development token")
	flag.Parse()

	fmt.Println("=== Book Pricing Service Key Generator ===")
	fmt.Println()

	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		fail("API key hash", err)
	}

	tokens := service.NewTokenService(service.TokenConfig{
		SecretKey: jwtSecret,
		Issuer:    *issuer,
		TTL:       *ttl,
	})
	token, expiresAt, err := tokens.Issue(*subject, "quote")
	if err != nil {
		fail("development token", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT authentication (AUTH_MODE=jwt)")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Printf("JWT_ISSUER=%s\n", *issuer)
	fmt.Println()
	fmt.Println("# API key authentication (AUTH_MODE=api_key), store the hash and hand out the key")
	fmt.Printf("API_KEYS=%s\n", hashed)
	fmt.Printf("# client key: %s\n", apiKey)
	fmt.Println()
	fmt.Printf("Development token for %q (expires %s):\n", *subject, expiresAt.Format(time.RFC3339))
	fmt.Println(token)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
