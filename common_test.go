package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	config, err := parseConfig([]byte(`client_id = "id"
client_secret = "secret"
`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	g := config.General
	if g.TimeZone != defaultTimeZone || g.Provider != "google" || g.CalendarName != "TEMPO-CLARO Rotinas" {
		t.Fatalf("unexpected defaults %+v", g)
	}
	if g.SubmitWorkers != 1 || g.ConnectAttempts != 3 || g.Database != ".routinecal.db" {
		t.Fatalf("unexpected defaults %+v", g)
	}
	if config.ClientID != "id" || config.ClientSecret != "secret" {
		t.Fatalf("unexpected credentials %+v", config)
	}
}

func TestParseConfigFull(t *testing.T) {
	config, err := parseConfig([]byte(`verbosity_level = 2

[general]
timezone = "Europe/Lisbon"
calendar_name = "Routines"
provider = "caldav"
caldav_server = "home"
submit_workers = 4

[caldav_servers.home]
name = "Home"
server_url = "https://dav.example.com/"
username = "me"
password = "secret"
home_set = "/calendars/me/"
`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if config.VerbosityLevel != 2 || config.General.TimeZone != "Europe/Lisbon" || config.General.SubmitWorkers != 4 {
		t.Fatalf("unexpected config %+v", config)
	}
	server, ok := config.CalDAVs["home"]
	if !ok || server.HomeSet != "/calendars/me/" || server.Password != "secret" {
		t.Fatalf("unexpected caldav servers %+v", config.CalDAVs)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := parseConfig([]byte("general = [")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestReadConfigFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	dir := filepath.Join(home, ".config", "routinecal")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("verbosity_level = 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	savedDir, savedLevel := configDir, verbosityLevel
	t.Cleanup(func() { configDir, verbosityLevel = savedDir, savedLevel })

	config, err := readConfig(configFileName)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if config.VerbosityLevel != 3 || verbosityLevel != 3 {
		t.Fatalf("expected verbosity 3, got %d", config.VerbosityLevel)
	}
	if configDir != home+"/.config/routinecal/" {
		t.Fatalf("unexpected config dir %s", configDir)
	}
}
