package datetime

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// parentLocales lists the data parents of locale, nearest first, stopping
// before root: "es-MX" -> ["es-419", "es"]. Tags x/text cannot parse fall
// back to dropping trailing subtags.
func parentLocales(locale string) []string {
	locale = baseLocale(normalizeLocale(locale))
	if locale == "" {
		return nil
	}

	var parents []string
	seen := map[string]struct{}{locale: {}}
	push := func(value string) bool {
		if value == "" || value == "und" {
			return false
		}
		if _, ok := seen[value]; ok {
			return true
		}
		seen[value] = struct{}{}
		parents = append(parents, value)
		return true
	}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			if !push(parent.String()) {
				break
			}
		}
	}

	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		push(current)
	}

	return parents
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}

// baseLocale drops BCP-47 extensions and private use subtags: "en-GB-u-ca-buddhist" -> "en-GB".
func baseLocale(locale string) string {
	parts := strings.Split(locale, "-")
	for i, part := range parts {
		if i > 0 && len(part) == 1 {
			return strings.Join(parts[:i], "-")
		}
	}
	return locale
}

// localeTag parses locale and returns the tag together with the
// extension-free locale string used as the data key.
func localeTag(locale string) (language.Tag, string, error) {
	normalized := normalizeLocale(locale)
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, "", err
	}
	return tag, baseLocale(tag.String()), nil
}
