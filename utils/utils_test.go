package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Go Basics", "go-basics"},
		{"  Advanced Go: Concurrency & Channels  ", "advanced-go-concurrency-channels"},
		{"Already-Slugged", "already-slugged"},
		{"100 Days of Go", "100-days-of-go"},
		{"!!!", ""},
		{"Ünïcode Tïtle", "n-code-t-tle"},
	}
	for _, tc := range tests {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
