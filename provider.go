package datetime

import (
	"errors"
	"fmt"
)

// DataKey addresses locale data for one calendar.
type DataKey struct {
	Locale   string
	Calendar Calendar
}

func (k DataKey) String() string {
	return fmt.Sprintf("%s/%s", k.Locale, k.Calendar)
}

// DataProvider supplies locale data. Implementations must wrap absent
// entries with ErrMissingData and must not substitute unrelated locales.
type DataProvider interface {
	DatePatterns(key DataKey) (LengthPatterns, error)
	TimePatterns(key DataKey) (TimeLengths, error)
	GluePatterns(key DataKey) (GlueLengths, error)
	SkeletonPatterns(key DataKey) (SkeletonPatternTable, error)
	DateSymbols(key DataKey) (*DateSymbols, error)
	TimeSymbols(key DataKey) (*TimeSymbols, error)
	WeekRules(key DataKey) (WeekRules, error)
	NumberingSymbols(key DataKey) (NumberingSymbols, error)
}

// DateSymbolsSource supplies date symbols only, e.g. from a third-party name table.
type DateSymbolsSource interface {
	DateSymbols(key DataKey) (*DateSymbols, error)
}

// DateSymbolsSourceFunc adapts a function to DateSymbolsSource.
type DateSymbolsSourceFunc func(key DataKey) (*DateSymbols, error)

func (f DateSymbolsSourceFunc) DateSymbols(key DataKey) (*DateSymbols, error) {
	return f(key)
}

type overlayProvider struct {
	DataProvider
	overlay DateSymbolsSource
}

// OverlayProvider serves date symbols from overlay, layered over base's
// symbols, and everything else from base. An overlay miss (ErrMissingData)
// leaves base's symbols untouched.
func OverlayProvider(base DataProvider, overlay DateSymbolsSource) DataProvider {
	if overlay == nil {
		return base
	}
	return &overlayProvider{DataProvider: base, overlay: overlay}
}

func (p *overlayProvider) DateSymbols(key DataKey) (*DateSymbols, error) {
	top, err := p.overlay.DateSymbols(key)
	if err != nil && !errors.Is(err, ErrMissingData) {
		return nil, err
	}

	base, baseErr := p.DataProvider.DateSymbols(key)
	switch {
	case baseErr == nil:
		return base.Overlay(top), nil
	case top != nil && errors.Is(baseErr, ErrMissingData):
		return top.Clone(), nil
	default:
		return nil, baseErr
	}
}
