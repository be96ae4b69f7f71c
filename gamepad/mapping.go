//go:build !nogamepad

// Package gamepad validates SDL game controller mapping databases before
// they are handed to the platform gamepad layer.
package gamepad

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/milk9111/quiver/gameerr"
)

var (
	ErrGUID     = errors.New("invalid controller GUID")
	ErrName     = errors.New("missing controller name")
	ErrField    = errors.New("malformed mapping field")
	ErrBinding  = errors.New("malformed element binding")
	ErrRejected = errors.New("mappings rejected by the gamepad backend")
)

// Error reports a mapping database the gamepad backend cannot use. Line is
// 1-based and zero when the failure is not tied to one line.
type Error struct {
	Source string
	Line   int
	Err    error
}

func (e *Error) Error() string {
	msg := "invalid mapping"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("gamepad %s:%d: %s", e.Source, e.Line, msg)
	case e.Source != "":
		return fmt.Sprintf("gamepad %s: %s", e.Source, msg)
	}
	return "gamepad: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func init() {
	gameerr.Register(func(err error) (*gameerr.Error, bool) {
		if ge, ok := err.(*Error); ok {
			return gameerr.Gamepad(ge), true
		}
		return nil, false
	})
}

// Mapping is one parsed line of an SDL mapping database.
type Mapping struct {
	GUID     string
	Name     string
	Platform string
	Elements map[string]string
}

// ParseMappings parses an SDL gamecontrollerdb.txt style database. Blank
// lines and lines starting with '#' are skipped.
func ParseMappings(source string, data []byte) ([]Mapping, error) {
	var out []Mapping
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		m, err := parseLine(text)
		if err != nil {
			return nil, &Error{Source: source, Line: line, Err: err}
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Source: source, Err: err}
	}
	return out, nil
}

// ReadMappings reads and validates a mapping database from fsys.
func ReadMappings(fsys fs.FS, name string) ([]byte, []Mapping, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, nil, err
	}
	m, err := ParseMappings(name, data)
	if err != nil {
		return nil, nil, err
	}
	return data, m, nil
}

func parseLine(text string) (Mapping, error) {
	fields := strings.Split(strings.TrimSuffix(text, ","), ",")
	if len(fields) < 2 {
		return Mapping{}, ErrName
	}
	guid := fields[0]
	if len(guid) != 32 {
		return Mapping{}, ErrGUID
	}
	if _, err := hex.DecodeString(guid); err != nil {
		return Mapping{}, ErrGUID
	}
	name := strings.TrimSpace(fields[1])
	if name == "" {
		return Mapping{}, ErrName
	}

	m := Mapping{GUID: strings.ToLower(guid), Name: name, Elements: make(map[string]string, len(fields)-2)}
	for _, f := range fields[2:] {
		key, value, ok := strings.Cut(f, ":")
		if !ok || key == "" {
			return Mapping{}, fmt.Errorf("%w %q", ErrField, f)
		}
		if key == "platform" {
			m.Platform = value
			continue
		}
		if !validBinding(value) {
			return Mapping{}, fmt.Errorf("%w %s:%s", ErrBinding, key, value)
		}
		m.Elements[key] = value
	}
	return m, nil
}

// validBinding accepts bN, aN, hN.M with optional +/- range prefix and ~
// inversion suffix.
func validBinding(v string) bool {
	v = strings.TrimPrefix(strings.TrimPrefix(v, "+"), "-")
	v = strings.TrimSuffix(v, "~")
	if len(v) < 2 {
		return false
	}
	rest := v[1:]
	switch v[0] {
	case 'a', 'b':
		_, err := strconv.ParseUint(rest, 10, 16)
		return err == nil
	case 'h':
		hat, mask, ok := strings.Cut(rest, ".")
		if !ok {
			return false
		}
		if _, err := strconv.ParseUint(hat, 10, 8); err != nil {
			return false
		}
		_, err := strconv.ParseUint(mask, 10, 8)
		return err == nil
	}
	return false
}
