// Package main provides a CLI tool for generating test tokens for the
// attestry API. These tokens use dev signing keys and will NOT work in
// production.
package main

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"attestry/internal/jwttoken"
	id "attestry/pkg/domain"
	"attestry/pkg/secrets"
)

const (
	// Dev signing key - matches config.go when ATTESTRY_JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	// Default admin token for local/dev environments
	devAdminToken = "dev-admin-token-change-in-production"

	// Default values matching the server config
	defaultIssuer   = "https://attestry.local"
	defaultAudience = "attestry-api"
	defaultTokenTTL = time.Hour
)

type tokenOutput struct {
	Token     string            `json:"token"`
	Type      string            `json:"type"`
	ExpiresIn string            `json:"expires_in,omitempty"`
	Claims    map[string]any    `json:"claims,omitempty"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	attesterCmd := flag.NewFlagSet("attester", flag.ExitOnError)
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)

	// Attester token flags
	attesterPrincipal := attesterCmd.String("principal", "", "Principal address (0x-hex, 20 bytes). Generated if empty.")
	attesterTTL := attesterCmd.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	attesterEnv := attesterCmd.String("env", "development", "Environment claim embedded in the token")
	attesterJSON := attesterCmd.Bool("json", false, "Output as JSON")

	// Admin token flags
	adminGenerate := adminCmd.Bool("generate", false, "Generate a fresh admin token and its bcrypt hash")
	adminJSON := adminCmd.Bool("json", false, "Output as JSON")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "attester":
		attesterCmd.Parse(os.Args[2:])
		generateAttesterToken(*attesterPrincipal, *attesterTTL, *attesterEnv, *attesterJSON)
	case "admin":
		adminCmd.Parse(os.Args[2:])
		if *adminGenerate {
			generateAdminToken(*adminJSON)
		} else {
			showAdminToken(*adminJSON)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tokengen - Generate test tokens for the attestry API

WARNING: These tokens use the dev signing key and will NOT work in production.
         Only use for local development and testing.

Usage:
  tokengen <command> [flags]

Commands:
  attester  Generate an attester access token (JWT)
  admin     Show the admin API token

Examples:
  # Generate an attester token for a fresh principal
  tokengen attester

  # Generate a token for a specific principal with a custom TTL
  tokengen attester -principal 0x1111111111111111111111111111111111111111 -ttl 15m

  # Get the admin token for the X-Admin-Token header
  tokengen admin

  # Mint a production admin token and the hash to store in ATTESTRY_ADMIN_TOKEN
  tokengen admin -generate

  # Output as JSON
  tokengen attester -json

Use "tokengen <command> -h" for more information about a command.`)
}

func generateAttesterToken(principal string, ttl time.Duration, env string, jsonOutput bool) {
	addr := parseOrGeneratePrincipal(principal)

	svc := jwttoken.NewService(devSigningKey, defaultIssuer, defaultAudience, ttl)
	svc.SetEnv(env)

	token, err := svc.Generate(context.Background(), addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		output := tokenOutput{
			Token:     token,
			Type:      "attester_token",
			ExpiresIn: ttl.String(),
			Claims: map[string]any{
				"principal": addr.String(),
				"env":       env,
			},
			Usage: map[string]string{
				"header":      "Authorization: Bearer <token>",
				"signing_key": "dev",
			},
		}
		printJSON(output)
	} else {
		fmt.Println("Attester Token (JWT)")
		fmt.Println("====================")
		fmt.Println("Signing Key: dev")
		fmt.Printf("Expires In:  %s\n", ttl)
		fmt.Printf("Principal:   %s\n", addr)
		fmt.Printf("Env:         %s\n", env)
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/attest")
	}
}

func generateAdminToken(jsonOutput bool) {
	token, err := secrets.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}
	hash, err := secrets.Hash(token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing token: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		output := tokenOutput{
			Token: token,
			Type:  "admin_token",
			Claims: map[string]any{
				"hash": hash,
			},
			Usage: map[string]string{
				"header": "X-Admin-Token: <token>",
				"note":   "Store the hash in ATTESTRY_ADMIN_TOKEN; keep the token itself secret",
			},
		}
		printJSON(output)
	} else {
		fmt.Println("Admin API Token (generated)")
		fmt.Println("===========================")
		fmt.Printf("Token: %s\n", token)
		fmt.Printf("Hash:  %s\n", hash)
		fmt.Println()
		fmt.Println("Store the hash in ATTESTRY_ADMIN_TOKEN and send the token in X-Admin-Token.")
	}
}

func showAdminToken(jsonOutput bool) {
	if jsonOutput {
		output := tokenOutput{
			Token: devAdminToken,
			Type:  "admin_token",
			Usage: map[string]string{
				"header": "X-Admin-Token: " + devAdminToken,
				"note":   "Works when ATTESTRY_ADMIN_TOKEN is unset",
			},
		}
		printJSON(output)
	} else {
		fmt.Println("Admin API Token")
		fmt.Println("===============")
		fmt.Printf("Token: %s\n", devAdminToken)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  curl -H \"X-Admin-Token: " + devAdminToken + "\" http://localhost:8080/admin/...")
		fmt.Println()
		fmt.Println("Note: This token works when ATTESTRY_ADMIN_TOKEN is unset")
	}
}

func parseOrGeneratePrincipal(input string) id.Address {
	if input == "" {
		var addr id.Address
		if _, err := rand.Read(addr[:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating principal: %v\n", err)
			os.Exit(1)
		}
		return addr
	}
	parsed, err := id.ParseAddress(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid principal address: %s\n", input)
		os.Exit(1)
	}
	return parsed
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
