package i18n_test

import (
	"testing"

	"flohmarkt_backend/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestPickLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ar", i18n.PickLanguage(""))
	assert.Equal(t, "ar", i18n.PickLanguage("fr-FR"))
	assert.Equal(t, "en", i18n.PickLanguage("en-US,en;q=0.9"))
	assert.Equal(t, "ar", i18n.PickLanguage("ar, en;q=0.8"))
}

func TestForError_FallsBackAcrossDomainsAndLanguages(t *testing.T) {
	t.Parallel()

	// Domain-specific key wins
	msg := i18n.ForError("ar", "negotiation", "SELF_NEGOTIATION")
	assert.Equal(t, "لا يمكنك التفاوض على سعر منتجك الخاص", msg)

	// Unknown domain drops to the generic key
	generic := i18n.ForError("ar", "nosuchdomain", "NOT_FOUND")
	assert.NotEmpty(t, generic)

	// Unsupported language falls back to Arabic
	fallback := i18n.ForError("de", "negotiation", "SELF_NEGOTIATION")
	assert.Equal(t, msg, fallback)
}
