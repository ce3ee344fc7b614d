package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerationFilter_AllowsCleanText(t *testing.T) {
	filter := NewModerationFilter(DefaultBannedWords)

	assert.True(t, filter.IsAllowed("hello world"))
	assert.True(t, filter.IsAllowed(""))
	assert.True(t, filter.IsAllowed("a perfectly fine tweet"))
}

func TestModerationFilter_BlocksBannedWords(t *testing.T) {
	filter := NewModerationFilter(DefaultBannedWords)

	assert.False(t, filter.IsAllowed("I kill time on weekends"))
	assert.False(t, filter.IsAllowed("this is stupid"))
}

func TestModerationFilter_CaseInsensitive(t *testing.T) {
	filter := NewModerationFilter(DefaultBannedWords)

	assert.False(t, filter.IsAllowed("KILL"))
	assert.False(t, filter.IsAllowed("StUpId idea"))
}

func TestModerationFilter_SubstringMatch(t *testing.T) {
	filter := NewModerationFilter(DefaultBannedWords)

	// Plain substring matching blocks unrelated words that happen to
	// contain a banned token.
	assert.False(t, filter.IsAllowed("programming is a great skill"))
	assert.False(t, filter.IsAllowed("whatever"))
}

func TestModerationFilter_CustomList(t *testing.T) {
	filter := NewModerationFilter([]string{" Spam ", "", "SCAM"})

	assert.False(t, filter.IsAllowed("free spam here"))
	assert.False(t, filter.IsAllowed("obvious scam"))
	assert.True(t, filter.IsAllowed("legitimate offer"))
}

func TestModerationFilter_EmptyList(t *testing.T) {
	filter := NewModerationFilter(nil)

	assert.True(t, filter.IsAllowed("kill"))
}
