package main

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConnectWithRetry(t *testing.T) {
	saved := connectBackoff
	connectBackoff.Initial = time.Millisecond
	connectBackoff.Max = time.Millisecond
	t.Cleanup(func() { connectBackoff = saved })

	client := &fakeCalendarClient{}
	calls := 0
	flaky := func(ctx context.Context, credential string) (CalendarClient, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("unavailable")
		}
		return client, nil
	}

	got, err := connectWithRetry(3, flaky)(context.Background(), "token")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != client || calls != 3 {
		t.Fatalf("expected the client after 3 calls, got %d calls", calls)
	}

	calls = 0
	_, err = connectWithRetry(2, flaky)(context.Background(), "token")
	if err == nil || err.Error() != "unavailable" {
		t.Fatalf("expected the last error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestConnectWithRetryStopsOnCancel(t *testing.T) {
	saved := connectBackoff
	connectBackoff.Initial = time.Hour
	connectBackoff.Max = time.Hour
	t.Cleanup(func() { connectBackoff = saved })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	failing := func(ctx context.Context, credential string) (CalendarClient, error) {
		calls++
		return nil, errors.New("unavailable")
	}
	if _, err := connectWithRetry(5, failing)(ctx, "token"); err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestCalendarFactoryCalDAV(t *testing.T) {
	config := &Config{
		General: GeneralConfig{Provider: "caldav", CalDAVServer: "home"},
		CalDAVs: map[string]CalDAVConfig{
			"home": {ServerURL: "https://dav.example.com/", Username: "me", Password: "secret"},
		},
	}
	config.normalize()
	factory := NewCalendarFactory(config, nil)

	if got := factory.Provider(); got != "caldav-home" {
		t.Fatalf("expected caldav-home, got %s", got)
	}
	credential, err := factory.Credential(context.Background())
	if err != nil || credential != "secret" {
		t.Fatalf("expected the server password, got %q (%v)", credential, err)
	}
	if _, err := factory.Connector(); err != nil {
		t.Fatalf("expected a connector, got %v", err)
	}

	config.General.CalDAVServer = "work"
	if _, err := factory.Connector(); err == nil {
		t.Fatal("expected an error for an unknown server")
	}
}

func TestCalendarFactoryUnknownProvider(t *testing.T) {
	factory := NewCalendarFactory(&Config{General: GeneralConfig{Provider: "outlook"}}, nil)

	if _, err := factory.Connector(); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := factory.Credential(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}
