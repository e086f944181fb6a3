package datetime

import (
	"reflect"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the map key or struct field holding the locale. Defaults to "Locale".
	LocaleKey string
	// DefaultLocale is used when the template data carries no locale.
	DefaultLocale string
}

type (
	lengthHelper   = func(locale string, value any, style ...string) (string, error)
	skeletonHelper = func(locale string, value any, components string) (string, error)
)

// TemplateHelpers exposes the registry's formatters to html/template and
// text/template. Helpers take the template data (or a locale string) first:
//
//	{{ format_date . .CreatedAt "long" }}
//	{{ format_skeleton "de" .CreatedAt "yMMMd" }}
//
// Locale overrides registered on the registry are dispatched at call time.
func TemplateHelpers(registry *FormatterRegistry, cfg HelperConfig) map[string]any {
	helpers := map[string]any{
		"current_locale": func(data any) string {
			return extractLocale(data, cfg.LocaleKey, cfg.defaultLocale(registry))
		},
	}
	if registry == nil {
		return helpers
	}

	locale := func(data any) string {
		return extractLocale(data, cfg.LocaleKey, cfg.defaultLocale(registry))
	}

	for _, name := range []string{"format_date", "format_time", "format_datetime"} {
		name := name
		helpers[name] = func(data any, value any, style ...string) (string, error) {
			loc := locale(data)
			fn, ok := registry.FuncMap(loc)[name].(lengthHelper)
			if !ok {
				fn = registry.defaults()[name].(lengthHelper)
			}
			return fn(loc, value, style...)
		}
	}

	helpers["format_skeleton"] = func(data any, value any, components string) (string, error) {
		loc := locale(data)
		fn, ok := registry.FuncMap(loc)["format_skeleton"].(skeletonHelper)
		if !ok {
			fn = registry.defaults()["format_skeleton"].(skeletonHelper)
		}
		return fn(loc, value, components)
	}

	return helpers
}

func (cfg HelperConfig) defaultLocale(registry *FormatterRegistry) string {
	if cfg.DefaultLocale != "" {
		return cfg.DefaultLocale
	}
	if registry != nil {
		return registry.defaultLocale()
	}
	return defaultFormatterLocales[0]
}

// extractLocale extracts the locale from template data using the configured key
// This function handles both map[string]any and struct types (like PageData)
func extractLocale(data any, localeKey, fallback string) string {
	if data == nil {
		return fallback
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	// Handle string directly
	if str, ok := data.(string); ok {
		if str == "" {
			return fallback
		}
		return str
	}

	// Try map access
	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok && str != "" {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok && v != "" {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return fallback
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByNameFunc(func(name string) bool {
			return name == localeKey
		})
		if field.IsValid() && field.Kind() == reflect.String && field.String() != "" {
			return field.String()
		}
	}

	return fallback
}
