package datetime

import "sync"

// FallbackResolver resolves explicit fallback locales for a locale.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver holds configured fallback chains.
type StaticFallbackResolver struct {
	mu    sync.RWMutex
	rules map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{rules: make(map[string][]string)}
}

// Set replaces the fallbacks for locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}

	cleaned := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		fallback = normalizeLocale(fallback)
		if fallback == "" || fallback == locale || containsLocale(cleaned, fallback) {
			continue
		}
		cleaned = append(cleaned, fallback)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rules == nil {
		s.rules = make(map[string][]string)
	}
	s.rules[locale] = cleaned
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.rules[normalizeLocale(locale)]...)
}
