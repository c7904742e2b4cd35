// Package memory renders learned client preferences into prompt context.
package memory

import (
	"fmt"
	"strings"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

// BuildContext renders a client preference into a prompt fragment. Clauses go in fixed order:
// tone, preferred style, industry, key terms. Returns "" for nil or when nothing applies.
func BuildContext(pref *domain.ClientPreference) string {
	if pref == nil {
		return ""
	}

	var clauses []string
	if pref.Tone != domain.ToneUnset {
		clauses = append(clauses, fmt.Sprintf("The client prefers a %s tone.", pref.Tone))
	}
	if pref.PreferredStyle != domain.StyleUnset {
		clauses = append(clauses, styleClause(pref.PreferredStyle))
	}
	if industry := strings.TrimSpace(pref.Industry); industry != "" {
		clauses = append(clauses, fmt.Sprintf("The client works in the %s industry.", industry))
	}
	if len(pref.KeyTerms) > 0 {
		clauses = append(clauses, fmt.Sprintf("Key terms the client cares about: %s.", strings.Join(pref.KeyTerms, ", ")))
	}

	return strings.Join(clauses, " ")
}

// styleClause maps a stored style to its prompt sentence. Extraction never stores an unknown style
// (ParseStyle turns it into StyleUnset), so the balanced default only fires for rows written by
// older versions or edited by hand.
func styleClause(style domain.Style) string {
	switch style {
	case domain.StyleDetailed:
		return "Use detailed, comprehensive language and spell out every obligation."
	case domain.StyleConcise:
		return "Keep the language concise and to the point."
	case domain.StyleModerate:
		return "Use a moderate level of detail."
	default:
		return "Balance thoroughness with readability."
	}
}
