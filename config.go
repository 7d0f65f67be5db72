package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Profile holds persistent CLI preferences so they do not have to be
// repeated on every invocation.
type Profile struct {
	NoColor bool `toml:"no_color"`
	Verbose bool `toml:"verbose"`
}

const profileName = ".dslogtools.toml"

// loadProfile reads a TOML profile from the given path, or from the
// default location in the home directory when no path is given. A
// missing default profile is not an error; a missing explicit one is.
func loadProfile(path string) (Profile, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Profile{}, nil
		}
		path = filepath.Join(home, profileName)
	}

	var profile Profile
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Profile{}, nil
		}
		return Profile{}, errors.Wrapf(err, "config load failed (%s)", path)
	}
	if err := toml.Unmarshal(data, &profile); err != nil {
		return Profile{}, errors.Wrapf(err, "config parse failed (%s)", path)
	}
	return profile, nil
}
