package domain

import "strings"

// DefaultBannedWords is the stock moderation list.
var DefaultBannedWords = []string{"hate", "fuck", "kill", "stupid"}

// ModerationFilter classifies tweet text as allowed or blocked by matching
// banned words as plain substrings, case-insensitively. Substring matching
// is intentional: "skill" trips a ban on "kill". Word-boundary matching
// would change which posts historical deployments blocked.
type ModerationFilter struct {
	banned []string
}

// NewModerationFilter builds a filter from the given word list. Words are
// lower-cased; empty entries are dropped.
func NewModerationFilter(words []string) *ModerationFilter {
	banned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			banned = append(banned, w)
		}
	}
	return &ModerationFilter{banned: banned}
}

// IsAllowed reports whether text contains none of the banned words.
func (f *ModerationFilter) IsAllowed(text string) bool {
	text = strings.ToLower(text)
	for _, w := range f.banned {
		if strings.Contains(text, w) {
			return false
		}
	}
	return true
}
