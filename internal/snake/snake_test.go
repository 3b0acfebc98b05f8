package snake

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"it lowercases and joins words with underscores", "Snake case this please", "snake_case_this_please"},
		{"it removes colons quotes and commas", `Title: "Hello, World"`, "title_hello_world"},
		{"it collapses a double space", "a  b", "a_b"},
		{"it collapses double spaces in a single pass", "a    b", "a__b"},
		{"it spells out ampersands", "Salt & Pepper", "salt_and_pepper"},
		{"it leaves an empty string empty", "", ""},
		{"it keeps other punctuation", "v1.2-beta", "v1.2-beta"},
		{"it collapses the gap left by a removed comma", "one , two", "one_two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.input); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
