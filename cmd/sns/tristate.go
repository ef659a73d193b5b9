package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// tristate is the parsed value of an auto|on|off flag (--ui, --color).
type tristate int8

const (
	auto tristate = iota
	forcedOn
	forcedOff
)

func parseTristate(flag, value string) (tristate, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return auto, nil
	case "on":
		return forcedOn, nil
	case "off":
		return forcedOff, nil
	}
	return auto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// enabled: auto включается, только если f - терминал
func (m tristate) enabled(f *os.File) bool {
	if m == auto {
		return isTerminal(f)
	}
	return m == forcedOn
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
