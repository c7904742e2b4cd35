package domain

import (
	"strings"
	"time"
)

// Tone represents the writing tone a client prefers
type Tone string

const (
	ToneUnset    Tone = ""
	ToneFormal   Tone = "formal"
	ToneCasual   Tone = "casual"
	ToneBalanced Tone = "balanced"
)

// Style represents the level of detail a client prefers
type Style string

const (
	StyleUnset    Style = ""
	StyleDetailed Style = "detailed"
	StyleConcise  Style = "concise"
	StyleModerate Style = "moderate"
)

// ParseTone converts free-form model output to a known tone, unknown values map to ToneUnset
func ParseTone(s string) Tone {
	switch t := Tone(strings.ToLower(strings.TrimSpace(s))); t {
	case ToneFormal, ToneCasual, ToneBalanced:
		return t
	default:
		return ToneUnset
	}
}

// ParseStyle converts free-form model output to a known style, unknown values map to StyleUnset
func ParseStyle(s string) Style {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case StyleDetailed, StyleConcise, StyleModerate:
		return st
	default:
		return StyleUnset
	}
}

// ClientPreference is the learned memory about one client of one user
type ClientPreference struct {
	UserID         string    `json:"user_id"`
	ClientName     string    `json:"client_name"`
	Tone           Tone      `json:"tone"`
	Industry       string    `json:"industry"`
	PreferredStyle Style     `json:"preferred_style"`
	KeyTerms       []string  `json:"key_terms"`
	ContractCount  int       `json:"contract_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ExtractionResult holds preference fields extracted from a single generated contract.
// Empty fields mean the model did not provide them.
type ExtractionResult struct {
	Tone           Tone
	Industry       string
	PreferredStyle Style
	KeyTerms       []string
}

// IsEmpty reports whether the extraction carries no field at all
func (e ExtractionResult) IsEmpty() bool {
	return e.Tone == ToneUnset && e.Industry == "" && e.PreferredStyle == StyleUnset && len(e.KeyTerms) == 0
}
