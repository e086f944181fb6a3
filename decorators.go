package datetime

import (
	"fmt"
	"io"
)

// Formatter is the behaviour shared by DateFormatter, TimeFormatter and DateTimeFormatter.
type Formatter interface {
	Format(value DateTimeInput) (string, error)
	FormatTo(w io.Writer, value DateTimeInput) error
	ResolveComponents() Bag
	Locale() string
	Calendar() Calendar
}

var (
	_ Formatter = (*DateFormatter)(nil)
	_ Formatter = (*TimeFormatter)(nil)
	_ Formatter = (*DateTimeFormatter)(nil)
	_ Formatter = (*HookedFormatter)(nil)
)

// FormatHook observes (and may rewrite) formatting results.
type FormatHook interface {
	BeforeFormat(ctx *FormatHookContext)
	AfterFormat(ctx *FormatHookContext)
}

type FormatHookContext struct {
	Locale   string
	Calendar Calendar
	Input    DateTimeInput
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *FormatHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *FormatHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type FormatHookFuncs struct {
	Before func(ctx *FormatHookContext)
	After  func(ctx *FormatHookContext)
}

func (h FormatHookFuncs) BeforeFormat(ctx *FormatHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h FormatHookFuncs) AfterFormat(ctx *FormatHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

type HookedFormatter struct {
	next  Formatter
	hooks []FormatHook
}

// WrapFormatterWithHooks returns next unchanged when there are no hooks.
func WrapFormatterWithHooks(next Formatter, hooks ...FormatHook) Formatter {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]FormatHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedFormatter{next: next, hooks: filtered}
}

func (f *HookedFormatter) Format(value DateTimeInput) (string, error) {
	ctx := &FormatHookContext{
		Locale:   f.next.Locale(),
		Calendar: f.next.Calendar(),
		Input:    value,
	}

	for _, hook := range f.hooks {
		hook.BeforeFormat(ctx)
	}

	ctx.Result, ctx.Error = f.next.Format(ctx.Input)

	for _, hook := range f.hooks {
		hook.AfterFormat(ctx)
	}

	return ctx.Result, ctx.Error
}

// FormatTo formats to a string first so hooks see the complete result.
func (f *HookedFormatter) FormatTo(w io.Writer, value DateTimeInput) error {
	result, err := f.Format(value)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, result); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return nil
}

func (f *HookedFormatter) ResolveComponents() Bag { return f.next.ResolveComponents() }
func (f *HookedFormatter) Locale() string         { return f.next.Locale() }
func (f *HookedFormatter) Calendar() Calendar     { return f.next.Calendar() }

// Unwrap returns the decorated formatter.
func (f *HookedFormatter) Unwrap() Formatter { return f.next }
