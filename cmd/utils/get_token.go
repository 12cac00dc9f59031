package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"voyagebj-service/internal/infrastructure/config"
	"voyagebj-service/internal/infrastructure/oauth"
	"voyagebj-service/pkg/logger"
)

// Obtains a Gmail refresh token allowed to send reservation emails.
// Run it once with GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET set and store the
// printed token as GMAIL_REFRESH_TOKEN.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GmailClientID == "" || cfg.GmailClientSecret == "" {
		log.Fatal("GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET must be set")
	}

	gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, "", logger.NewLogger(cfg.LogLevel))
	gmailOAuth.SetRedirectURL("http://localhost:8090/oauth2callback")

	// Create a random state
	state := "random-state"

	// Start an HTTP server to handle the OAuth callback
	http.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		// Check state parameter
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		// Exchange the authorization code for a token
		code := r.URL.Query().Get("code")
		token, err := gmailOAuth.ExchangeCode(context.Background(), code)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to exchange code: %v", err), http.StatusInternalServerError)
			return
		}

		tokenJSON, err := gmailOAuth.TokenToJSON(token)
		if err == nil {
			fmt.Printf("\nToken:\n%s\n", tokenJSON)
		}
		fmt.Printf("\nRefresh Token: %s\n\n", token.RefreshToken)

		// Respond to the user
		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		os.Exit(0)
	})

	// Generate the authorization URL
	authURL := gmailOAuth.GenerateAuthURL(state)
	fmt.Printf("Open this URL in your browser:\n%s\n", authURL)

	log.Fatal(http.ListenAndServe(":8090", nil))
}
