// Package settings persists flat string key/value pairs
package settings

import (
	"strconv"
)

// Store is the persistence collaborator used by configuration options
// GetSetting returns def for a missing key and records it, so a later save writes a complete file
type Store interface {
	GetSetting(key, def string) string
	SetSetting(key, value string)
}

// GetInt reads an integer, falling back to def on a missing or malformed value
func GetInt(s Store, key string, def int) int {
	raw := s.GetSetting(key, strconv.Itoa(def))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// SetInt writes an integer
func SetInt(s Store, key string, v int) {
	s.SetSetting(key, strconv.Itoa(v))
}

// GetBool reads a boolean stored as 0/1, also accepting true/false
func GetBool(s Store, key string, def bool) bool {
	raw := s.GetSetting(key, formatBool(def))
	switch raw {
	case "1":
		return true
	case "0":
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// SetBool writes a boolean as 0/1
func SetBool(s Store, key string, v bool) {
	s.SetSetting(key, formatBool(v))
}

// GetFloat reads a float, falling back to def on a missing or malformed value
func GetFloat(s Store, key string, def float64) float64 {
	raw := s.GetSetting(key, strconv.FormatFloat(def, 'g', -1, 64))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// SetFloat writes a float in shortest round-trip form
func SetFloat(s Store, key string, v float64) {
	s.SetSetting(key, strconv.FormatFloat(v, 'g', -1, 64))
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
