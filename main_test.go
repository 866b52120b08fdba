package main

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "short text fits in width",
			text:  "hello world",
			width: 80,
			want:  []string{"hello world"},
		},
		{
			name:  "long text wraps",
			text:  "the quick brown fox jumps over the lazy dog",
			width: 20,
			want:  []string{"the quick brown fox", "jumps over the lazy", "dog"},
		},
		{
			name:  "preserves paragraphs",
			text:  "first paragraph\n\nsecond paragraph",
			width: 80,
			want:  []string{"first paragraph", "", "second paragraph"},
		},
		{
			name:  "empty string",
			text:  "",
			width: 80,
			want:  []string{""},
		},
		{
			name:  "single long word",
			text:  "superlongword",
			width: 5,
			want:  []string{"superlongword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]bool{"oracle": true, "jira": false, "ai": true}
	got := sortedKeys(m)
	want := []string{"ai", "jira", "oracle"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedKeys() = %v, want %v", got, want)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantArgs    []string
		wantProfile string
	}{
		{
			name:        "no flags",
			args:        []string{"query", "open bugs"},
			wantArgs:    []string{"query", "open bugs"},
			wantProfile: "",
		},
		{
			name:        "profile flag extracted",
			args:        []string{"--profile", "staging", "health"},
			wantArgs:    []string{"health"},
			wantProfile: "staging",
		},
		{
			name:        "profile flag after command",
			args:        []string{"health", "--profile", "prod"},
			wantArgs:    []string{"health"},
			wantProfile: "prod",
		},
		{
			name:        "trailing profile flag without value",
			args:        []string{"health", "--profile"},
			wantArgs:    []string{"health"},
			wantProfile: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activeProfile = ""
			got := parseGlobalFlags(tt.args)
			if !reflect.DeepEqual(got, tt.wantArgs) {
				t.Errorf("parseGlobalFlags() = %v, want %v", got, tt.wantArgs)
			}
			if activeProfile != tt.wantProfile {
				t.Errorf("activeProfile = %q, want %q", activeProfile, tt.wantProfile)
			}
		})
	}
	activeProfile = ""
}
