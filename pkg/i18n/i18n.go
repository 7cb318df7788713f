package i18n

import "strings"

// DefaultLanguage is Arabic; the storefront is Arabic-first and English is
// kept as a fallback catalog.
const DefaultLanguage = "ar"

var supportedLanguages = []string{"ar", "en"}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	for _, l := range supportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// PickLanguage resolves an Accept-Language header value to a supported
// language, falling back to the default.
func PickLanguage(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	for _, lang := range supportedLanguages {
		if strings.HasPrefix(header, lang) {
			return lang
		}
	}
	return DefaultLanguage
}

// T translates key into lang. Lookup order: requested language, default
// language, then the key itself so a missing entry stays visible instead of
// rendering as an empty string.
func T(lang, key string) string {
	if msgs, ok := catalog[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if lang != DefaultLanguage {
		if msg, ok := catalog[DefaultLanguage][key]; ok {
			return msg
		}
	}
	return key
}

// ForError builds the catalog key for an error's domain and code, e.g.
// ("negotiation", "SELF_NEGOTIATION") -> "error.negotiation.self_negotiation".
func ForError(lang, domain, code string) string {
	key := "error." + domain + "." + strings.ToLower(code)
	if msg := T(lang, key); msg != key {
		return msg
	}
	// Generic per-code fallback
	key = "error." + strings.ToLower(code)
	return T(lang, key)
}
