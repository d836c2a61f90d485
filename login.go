package main

import (
	"fmt"
	"log"
)

func login() {
	config := mustLoadConfig()
	if config.ClientID == "" || config.ClientSecret == "" {
		log.Fatalf("Error: client_id and client_secret must be set in %s", configFileName)
	}

	store := mustOpenStore(config)
	defer store.Close()

	fmt.Println("🚀 Starting Google login...")
	token, err := getTokenFromWeb(oauthConfig)
	if err != nil {
		log.Fatalf("Error logging in: %v", err)
	}

	if err := saveToken(store.db, accountName, token); err != nil {
		log.Fatalf("Error saving token: %v", err)
	}
	fmt.Println("✅ Logged in, token saved")
}
