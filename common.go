package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

const (
	configFileName = ".routinecal.toml"
	accountName    = "default"
)

type Config struct {
	ClientID       string                  `toml:"client_id"`
	ClientSecret   string                  `toml:"client_secret"`
	VerbosityLevel int                     `toml:"verbosity_level"`
	General        GeneralConfig           `toml:"general"`
	CalDAVs        map[string]CalDAVConfig `toml:"caldav_servers"`
}

type GeneralConfig struct {
	TimeZone            string `toml:"timezone"`
	CalendarName        string `toml:"calendar_name"`
	CalendarDescription string `toml:"calendar_description"`
	// Provider is "google" or "caldav".
	Provider        string `toml:"provider"`
	CalDAVServer    string `toml:"caldav_server"`
	SubmitWorkers   int    `toml:"submit_workers"`
	ConnectAttempts int    `toml:"connect_attempts"`
	Database        string `toml:"database"`
}

type CalDAVConfig struct {
	Name      string `toml:"name"`
	ServerURL string `toml:"server_url"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	HomeSet   string `toml:"home_set"`
}

func (c *Config) normalize() {
	if c.General.TimeZone == "" {
		c.General.TimeZone = defaultTimeZone
	}
	if c.General.CalendarName == "" {
		c.General.CalendarName = "TEMPO-CLARO Rotinas"
	}
	if c.General.CalendarDescription == "" {
		c.General.CalendarDescription = "Routines created by routinecal"
	}
	if c.General.Provider == "" {
		c.General.Provider = "google"
	}
	if c.General.SubmitWorkers < 1 {
		c.General.SubmitWorkers = 1
	}
	if c.General.ConnectAttempts < 1 {
		c.General.ConnectAttempts = 3
	}
	if c.General.Database == "" {
		c.General.Database = ".routinecal.db"
	}
}

var oauthConfig *oauth2.Config
var configDir string
var verbosityLevel int

func initOAuthConfig(config *Config) {
	oauthConfig = &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		Scopes:       []string{calendar.CalendarScope},
	}
}

func readConfig(filename string) (*Config, error) {
	// Try first current dir, then `$HOME/.config/routinecal/`
	data, err := os.ReadFile(filename)
	if err != nil {
		data, err = os.ReadFile(os.Getenv("HOME") + "/.config/routinecal/" + filename)
		if err != nil {
			return nil, err
		}
		configDir = os.Getenv("HOME") + "/.config/routinecal/"
	}

	config, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	verbosityLevel = config.VerbosityLevel

	return config, nil
}

func parseConfig(data []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	config.normalize()
	return &config, nil
}

func mustLoadConfig() *Config {
	config, err := readConfig(configFileName)
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	initOAuthConfig(config)
	return config
}

func mustOpenStore(config *Config) *SQLiteStore {
	// The database lives next to the config file that was found.
	store, err := OpenSQLiteStore(configDir + config.General.Database)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	return store
}

func mustFindRoutine(store *SQLiteStore, idArg string) Routine {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		log.Fatalf("Invalid routine id %q: %v", idArg, err)
	}
	routine, err := FindRoutine(context.Background(), store, id)
	if err != nil {
		log.Fatalf("Error loading routine: %v", err)
	}
	return routine
}

func getTokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := config.Exchange(context.TODO(), authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return tok, nil
}

func saveToken(db *sql.DB, accountName string, token *oauth2.Token) error {
	tokenJSON, err := json.Marshal(token)
	if err != nil {
		return err
	}

	_, err = db.Exec("INSERT OR REPLACE INTO tokens (account_name, token) VALUES (?, ?)", accountName, tokenJSON)
	return err
}

// loadToken returns nil when no token was stored for the account.
func loadToken(db *sql.DB, accountName string) (*oauth2.Token, error) {
	var tokenJSON []byte
	err := db.QueryRow("SELECT token FROM tokens WHERE account_name = ?", accountName).Scan(&tokenJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving token from database: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenJSON, &token); err != nil {
		return nil, fmt.Errorf("error unmarshaling token: %w", err)
	}
	return &token, nil
}

// googleCredential returns a fresh access token for the stored account, or
// an empty string when the user has to log in (again).
func googleCredential(ctx context.Context, config *oauth2.Config, db *sql.DB) (string, error) {
	token, err := loadToken(db, accountName)
	if err != nil {
		return "", err
	}
	if token == nil {
		fmt.Println("  ❗️ No token found. Run `routinecal login` first.")
		return "", nil
	}

	newToken, err := config.TokenSource(ctx, token).Token()
	if err != nil {
		if strings.Contains(err.Error(), "Token has been expired or revoked") {
			fmt.Println("  ❗️ Token expired or revoked. Run `routinecal login` again.")
			return "", nil
		}
		return "", fmt.Errorf("error retrieving token from token source: %w", err)
	}

	if newToken.AccessToken != token.AccessToken {
		printVerbosely(3, "Token refreshed for account %s.\n", accountName)
		if err := saveToken(db, accountName, newToken); err != nil {
			log.Printf("Warning: failed to save refreshed token: %v", err)
		}
	}
	return newToken.AccessToken, nil
}

func printVerbosely(verbosity int, format string, a ...interface{}) {
	// Print only if verbosity is higher than verbosityLevel
	// verbosityLevel is set in the config file
	// 0 - no output, other than critical errors
	// 1 - results of commands
	// 2 - sync progress
	// 3 - per-event details
	// 4 - token handling
	// 5 - report everything
	if verbosity <= verbosityLevel {
		fmt.Printf(format, a...)
	}
}
