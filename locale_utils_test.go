package datetime

import (
	"reflect"
	"testing"
)

func TestParentLocales(t *testing.T) {
	cases := []struct {
		locale string
		want   []string
	}{
		{locale: "es_MX", want: []string{"es-419", "es"}},
		{locale: "de-AT", want: []string{"de"}},
		{locale: "en-GB-u-ca-buddhist", want: []string{"en-001", "en"}},
		{locale: "en", want: nil},
		{locale: "", want: nil},
	}

	for _, tc := range cases {
		if got := parentLocales(tc.locale); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parentLocales(%q) = %v, want %v", tc.locale, got, tc.want)
		}
	}
}

func TestLocaleTag(t *testing.T) {
	tag, key, err := localeTag(" th_TH-u-ca-buddhist ")
	if err != nil {
		t.Fatalf("localeTag: %v", err)
	}
	if key != "th-TH" {
		t.Fatalf("key = %q, want th-TH", key)
	}
	if value, _ := tag.Base(); value.String() != "th" {
		t.Fatalf("base = %v", value)
	}

	if _, _, err := localeTag("not a locale!"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNormalizeLocales(t *testing.T) {
	got := normalizeLocales([]string{" fr_CA", "de", "fr-CA", ""})
	want := []string{"de", "fr-CA"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeLocales = %v, want %v", got, want)
	}
}
