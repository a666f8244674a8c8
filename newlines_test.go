package glotlint

import "testing"

func TestNewlineRules(t *testing.T) {
	fr := Locales["fr"]

	tests := []struct {
		name        string
		rule        RuleFunc
		original    string
		translation string
		wantKind    string
	}{
		{
			name:        "should begin fails",
			rule:        newShouldBeginOnNewlineRule(),
			original:    "\nhello",
			translation: "bonjour",
			wantKind:    KindShouldBeginOnNewline,
		},
		{
			name:        "should begin passes",
			rule:        newShouldBeginOnNewlineRule(),
			original:    "\nhello",
			translation: "\nbonjour",
		},
		{
			name:        "should not begin fails",
			rule:        newShouldNotBeginOnNewlineRule(),
			original:    "hello",
			translation: "\nbonjour",
			wantKind:    KindShouldNotBeginOnNewline,
		},
		{
			name:        "should not begin passes",
			rule:        newShouldNotBeginOnNewlineRule(),
			original:    "hello",
			translation: "bonjour",
		},
		{
			name:        "should end fails",
			rule:        newShouldEndOnNewlineRule(),
			original:    "hello\n",
			translation: "bonjour",
			wantKind:    KindShouldEndOnNewline,
		},
		{
			name:        "should end passes",
			rule:        newShouldEndOnNewlineRule(),
			original:    "hello\n",
			translation: "bonjour\n",
		},
		{
			name:        "should not end fails",
			rule:        newShouldNotEndOnNewlineRule(),
			original:    "hello",
			translation: "bonjour\n",
			wantKind:    KindShouldNotEndOnNewline,
		},
		{
			name:        "should not end passes",
			rule:        newShouldNotEndOnNewlineRule(),
			original:    "hello",
			translation: "bonjour",
		},
		{
			name:        "empty strings pass everywhere",
			rule:        newShouldBeginOnNewlineRule(),
			original:    "",
			translation: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := tt.rule(tt.original, tt.translation, fr)
			checkSingleIssue(t, issues, tt.wantKind)
		})
	}
}

// The four newline rules must be independently toggleable.
func TestNewlineRules_Toggleable(t *testing.T) {
	c := New(WithFormatter(kindFormatter{}))
	c.Unregister("should_end_on_newline")

	report := c.Check("bye\n", nil, map[int]string{0: "au revoir"}, Locales["fr"])
	if report != nil {
		if _, ok := report[0]["should_end_on_newline"]; ok {
			t.Error("disabled rule still ran")
		}
	}
}
