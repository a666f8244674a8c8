package glotlint

import "testing"

func TestTagsRule(t *testing.T) {
	rule := newTagsRule(DefaultBuiltinConfig())
	fr := Locales["fr"]

	tests := []struct {
		name        string
		original    string
		translation string
		locale      *Locale
		wantKinds   []string
	}{
		{
			name:        "matching tags pass",
			original:    "Hello <b>world</b>",
			translation: "Bonjour <b>monde</b>",
			locale:      fr,
		},
		{
			name:        "missing tag",
			original:    "Hello <b>world</b>",
			translation: "Bonjour monde",
			locale:      fr,
			wantKinds:   []string{KindTagsMissing},
		},
		{
			name:        "extra tag",
			original:    "Hello world",
			translation: "Bonjour <b>monde</b>",
			locale:      fr,
			wantKinds:   []string{KindTagsExtra},
		},
		{
			name:        "transposed tags are an order issue not a count issue",
			original:    "<em><strong>x</strong></em>",
			translation: "<strong><em>x</em></strong>",
			locale:      fr,
			wantKinds:   []string{KindTagsOrder},
		},
		{
			name:        "changed tag content",
			original:    `<span class="note">x</span>`,
			translation: `<span class="warn">x</span>`,
			locale:      fr,
			wantKinds:   []string{KindTagChanged},
		},
		{
			name:        "volatile attributes may differ",
			original:    `<a href="https://wordpress.org/a" title="Read">x</a>`,
			translation: `<a href="https://wordpress.org/a" title="Lire">x</a>`,
			locale:      fr,
		},
		{
			name:        "dropped italics tolerated for japanese",
			original:    "Hello <em>world</em>",
			translation: "こんにちは 世界",
			locale:      Locales["ja"],
		},
		{
			name:        "dropped italics not tolerated for french",
			original:    "Hello <em>world</em>",
			translation: "Bonjour monde",
			locale:      fr,
			wantKinds:   []string{KindTagsMissing},
		},
		{
			name:        "changed href url",
			original:    `<a href="https://wordpress.org/a">x</a>`,
			translation: `<a href="https://evil.org/a">x</a>`,
			locale:      fr,
			wantKinds:   []string{KindURLsMissing, KindURLsAdded},
		},
		{
			name:        "promoted subdomain href passes",
			original:    `<a href="https://wordpress.org/a">x</a>`,
			translation: `<a href="https://de.wordpress.org/a">x</a>`,
			locale:      Locales["de"],
		},
		{
			name:        "changed mailto target",
			original:    `<a href="mailto:team@example.org">x</a>`,
			translation: `<a href="mailto:spam@evil.org">x</a>`,
			locale:      fr,
			wantKinds:   []string{KindLinksMissing, KindLinksAdded},
		},
		{
			name:        "no tags at all",
			original:    "plain",
			translation: "plat",
			locale:      fr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := rule(tt.original, tt.translation, tt.locale)
			if len(issues) != len(tt.wantKinds) {
				t.Fatalf("got %d issues (%v), want kinds %v", len(issues), issues, tt.wantKinds)
			}
			for i, want := range tt.wantKinds {
				if issues[i].Kind != want {
					t.Errorf("issue %d kind = %s, want %s", i, issues[i].Kind, want)
				}
			}
		})
	}
}

func TestTagsRule_MissingTagData(t *testing.T) {
	rule := newTagsRule(DefaultBuiltinConfig())

	issues := rule("a <b>x</b> <i>y</i>", "a <b>x</b>", Locales["fr"])
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %v", issues)
	}
	if got := issues[0].Data["Tags"]; got != "<i> </i>" {
		t.Errorf("Tags = %q, want %q", got, "<i> </i>")
	}
}

func TestTagsRule_ChangedTagCitesOriginals(t *testing.T) {
	rule := newTagsRule(DefaultBuiltinConfig())

	issues := rule(`<span class="a">x</span>`, `<span class="b">x</span>`, Locales["fr"])
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %v", issues)
	}
	if issues[0].Data["Expected"] != `<span class="a">` || issues[0].Data["Got"] != `<span class="b">` {
		t.Errorf("unexpected data: %v", issues[0].Data)
	}
}
