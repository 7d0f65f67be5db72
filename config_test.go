package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfile(tr *testing.T) {
	tr.Run("Explicit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.toml")
		content := "no_color = true\nverbose = true\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		profile, err := loadProfile(path)
		if err != nil {
			t.Fatalf("load returned an error (%s)", err)
		}
		if !profile.NoColor || !profile.Verbose {
			t.Error("profile fields did not load")
		}
	})

	tr.Run("ExplicitMissing", func(t *testing.T) {
		if _, err := loadProfile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("an explicitly named profile must exist")
		}
	})

	tr.Run("Invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.toml")
		if err := os.WriteFile(path, []byte("no_color = {"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadProfile(path); err == nil {
			t.Error("malformed TOML should fail to load")
		}
	})
}
