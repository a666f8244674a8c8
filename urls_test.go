package glotlint

import (
	"strings"
	"testing"
)

func TestURLsRule(t *testing.T) {
	rule := newURLsRule(DefaultBuiltinConfig())
	fr := Locales["fr"]

	tests := []struct {
		name        string
		original    string
		translation string
		wantKinds   []string
	}{
		{
			name:        "identical urls pass",
			original:    "Docs at https://example.org/docs",
			translation: "Docs sur https://example.org/docs",
		},
		{
			name:        "no urls pass",
			original:    "nothing here",
			translation: "rien ici",
		},
		{
			name:        "scheme swap tolerated",
			original:    "See https://example.org/docs",
			translation: "Voir http://example.org/docs",
		},
		{
			name:        "trailing slash tolerated",
			original:    "See https://example.org/docs/",
			translation: "Voir https://example.org/docs",
		},
		{
			name:        "wordpress subdomain promotion",
			original:    "Get it from https://wordpress.org/plugins/x today",
			translation: "Sur https://fr.wordpress.org/plugins/x aujourd'hui",
		},
		{
			name:        "dropped url",
			original:    "See https://example.org/docs",
			translation: "Voir la documentation",
			wantKinds:   []string{KindURLsMissing},
		},
		{
			name:        "invented url",
			original:    "See the docs",
			translation: "Voir https://evil.org/docs",
			wantKinds:   []string{KindURLsAdded},
		},
		{
			name:        "rewritten to unlisted host",
			original:    "See https://example.org/docs",
			translation: "Voir https://evil.org/docs",
			wantKinds:   []string{KindURLsMissing, KindURLsAdded},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := rule(tt.original, tt.translation, fr)
			if len(issues) != len(tt.wantKinds) {
				t.Fatalf("got %v, want kinds %v", issues, tt.wantKinds)
			}
			for i, want := range tt.wantKinds {
				if issues[i].Kind != want {
					t.Errorf("issue %d kind = %s, want %s", i, issues[i].Kind, want)
				}
			}
		})
	}
}

func TestURLsRule_MessageListsRemaining(t *testing.T) {
	rule := newURLsRule(DefaultBuiltinConfig())

	issues := rule(
		"https://a.org/1 and https://a.org/2",
		"https://a.org/1 only",
		Locales["fr"],
	)
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %v", issues)
	}
	urls, _ := issues[0].Data["URLs"].(string)
	if !strings.Contains(urls, "https://a.org/2") || strings.Contains(urls, "https://a.org/1") {
		t.Errorf("unexpected URL list: %q", urls)
	}
}
