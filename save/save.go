//go:build !nosave

// Package save persists small per-profile values as YAML files under the
// user's configuration directory.
package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/quiver/gameerr"
)

var (
	ErrNoApp          = errors.New("save: no application name")
	ErrInvalidProfile = errors.New("save: invalid profile name")
)

// Error reports a failed save or load of one profile.
type Error struct {
	Op      string
	Profile string
	Err     error
}

func (e *Error) Error() string {
	msg := "failed"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("save: %s %s: %s", e.Op, e.Profile, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func init() {
	gameerr.Register(func(err error) (*gameerr.Error, bool) {
		se, ok := err.(*Error)
		if !ok {
			return nil, false
		}
		return gameerr.Save(se), true
	})
}

// Store reads and writes <Dir>/<App>/<profile>.yaml.
type Store struct {
	App string
	Dir string
}

// NewStore uses the user configuration directory when dir is empty.
func NewStore(app, dir string) (*Store, error) {
	if app == "" {
		return nil, ErrNoApp
	}
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("save: locate config dir: %w", err)
		}
		dir = d
	}
	return &Store{App: app, Dir: dir}, nil
}

// Path returns the file that holds profile.
func (s *Store) Path(profile string) string {
	return filepath.Join(s.Dir, s.App, profile+".yaml")
}

// Save encodes v and replaces the profile file atomically.
func (s *Store) Save(profile string, v any) error {
	if err := validProfile(profile); err != nil {
		return &Error{Op: "save", Profile: profile, Err: err}
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return &Error{Op: "save", Profile: profile, Err: err}
	}

	path := s.Path(profile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Error{Op: "save", Profile: profile, Err: err}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &Error{Op: "save", Profile: profile, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &Error{Op: "save", Profile: profile, Err: err}
	}
	return nil
}

// Load decodes the profile file into v.
func (s *Store) Load(profile string, v any) error {
	if err := validProfile(profile); err != nil {
		return &Error{Op: "load", Profile: profile, Err: err}
	}
	data, err := os.ReadFile(s.Path(profile))
	if err != nil {
		return &Error{Op: "load", Profile: profile, Err: err}
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return &Error{Op: "load", Profile: profile, Err: err}
	}
	return nil
}

// Delete removes the profile file. Deleting a missing profile is not an
// error.
func (s *Store) Delete(profile string) error {
	if err := validProfile(profile); err != nil {
		return &Error{Op: "delete", Profile: profile, Err: err}
	}
	if err := os.Remove(s.Path(profile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{Op: "delete", Profile: profile, Err: err}
	}
	return nil
}

// Profiles lists the stored profile names.
func (s *Store) Profiles() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, s.App, "*.yaml"))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(filepath.Base(m), ".yaml"))
	}
	return out, nil
}

func validProfile(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ErrInvalidProfile
	}
	return nil
}
