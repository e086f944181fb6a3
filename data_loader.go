package datetime

import (
	_ "embed"
	"sync"
)

//go:embed data/default_calendar_data.json
var defaultCalendarDataJSON []byte

// DefaultBundle decodes a fresh copy of the embedded calendar data
// (en, en-GB, es, de, fr; buddhist and japanese for en).
func DefaultBundle() (*Bundle, error) {
	return DecodeBundle("default_calendar_data.json", defaultCalendarDataJSON)
}

var (
	sharedProviderOnce sync.Once
	sharedProvider     *StaticProvider
	sharedProviderErr  error
)

// DefaultProvider returns a shared provider over the embedded data.
func DefaultProvider() (*StaticProvider, error) {
	sharedProviderOnce.Do(func() {
		bundle, err := DefaultBundle()
		if err != nil {
			sharedProviderErr = err
			return
		}
		sharedProvider, sharedProviderErr = NewStaticProvider(bundle, nil)
	})
	return sharedProvider, sharedProviderErr
}
