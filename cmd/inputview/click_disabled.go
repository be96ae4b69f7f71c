//go:build nosound

package main

import "log/slog"

type clicker struct{}

func newClicker(*slog.Logger) clicker { return clicker{} }

func (clicker) play() {}
