package main

import (
	"context"
	"fmt"
	"time"

	"github.com/googleapis/gax-go/v2"
)

// connectBackoff paces retries of a failed client initialization.
var connectBackoff = gax.Backoff{
	Initial:    500 * time.Millisecond,
	Max:        5 * time.Second,
	Multiplier: 2,
}

// CalendarFactory builds calendar clients for the configured provider.
type CalendarFactory struct {
	config *Config
	store  *SQLiteStore
}

func NewCalendarFactory(config *Config, store *SQLiteStore) *CalendarFactory {
	return &CalendarFactory{
		config: config,
		store:  store,
	}
}

// Provider is the name recorded next to synced event ids.
func (cf *CalendarFactory) Provider() string {
	if cf.config.General.Provider == "caldav" {
		return "caldav-" + cf.config.General.CalDAVServer
	}
	return cf.config.General.Provider
}

// Credential returns the secret handed to Connect. An empty string means
// the user has nothing usable stored.
func (cf *CalendarFactory) Credential(ctx context.Context) (string, error) {
	switch cf.config.General.Provider {
	case "google":
		return googleCredential(ctx, oauthConfig, cf.store.db)
	case "caldav":
		server, err := cf.caldavServer()
		if err != nil {
			return "", err
		}
		return server.Password, nil
	default:
		return "", fmt.Errorf("unsupported provider type: %s", cf.config.General.Provider)
	}
}

// Connector returns the client initialization used by a sync, retried up to
// the configured number of attempts.
func (cf *CalendarFactory) Connector() (ConnectFunc, error) {
	var connect ConnectFunc
	switch cf.config.General.Provider {
	case "google":
		connect = func(ctx context.Context, credential string) (CalendarClient, error) {
			return NewGoogleCalendarProvider(ctx, credential)
		}

	case "caldav":
		server, err := cf.caldavServer()
		if err != nil {
			return nil, err
		}
		connect = func(ctx context.Context, credential string) (CalendarClient, error) {
			return NewCalDAVProvider(ctx, server.ServerURL, server.HomeSet, server.Username, credential)
		}

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cf.config.General.Provider)
	}
	return connectWithRetry(cf.config.General.ConnectAttempts, connect), nil
}

// Client connects right away, for commands that work outside a sync.
func (cf *CalendarFactory) Client(ctx context.Context) (CalendarClient, error) {
	credential, err := cf.Credential(ctx)
	if err != nil {
		return nil, err
	}
	if credential == "" {
		return nil, ErrNoCredential
	}
	connect, err := cf.Connector()
	if err != nil {
		return nil, err
	}
	return connect(ctx, credential)
}

func (cf *CalendarFactory) caldavServer() (CalDAVConfig, error) {
	serverName := cf.config.General.CalDAVServer
	if serverName == "" {
		return CalDAVConfig{}, fmt.Errorf("no caldav_server set in the [general] section")
	}
	server, ok := cf.config.CalDAVs[serverName]
	if !ok {
		return CalDAVConfig{}, fmt.Errorf("CalDAV server '%s' not found in configuration", serverName)
	}
	return server, nil
}

func connectWithRetry(attempts int, connect ConnectFunc) ConnectFunc {
	if attempts < 1 {
		attempts = 1
	}
	return func(ctx context.Context, credential string) (CalendarClient, error) {
		bo := connectBackoff
		var lastErr error
		for attempt := 1; attempt <= attempts; attempt++ {
			client, err := connect(ctx, credential)
			if err == nil {
				return client, nil
			}
			lastErr = err
			if attempt == attempts {
				break
			}
			printVerbosely(2, "  ⏳ Connection attempt %d failed: %v\n", attempt, err)
			if err := gax.Sleep(ctx, bo.Pause()); err != nil {
				break
			}
		}
		return nil, lastErr
	}
}
