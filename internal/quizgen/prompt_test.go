package quizgen

import (
	"strings"
	"testing"

	"github.com/bumpwise/bumpquiz/internal/profile"
)

func TestBuildUserMessage(t *testing.T) {
	req := Request{
		Profile:     profile.Profile{UserID: "u1", Name: "Maya", Interests: []string{"nutrition", "exercise"}},
		Week:        24,
		ContentType: TypeQuiz,
		Difficulty:  "medium",
		Count:       5,
	}

	msg := buildUserMessage(req, nil, DefaultConfig())

	for _, want := range []string{
		"Pregnancy week: 24",
		"Difficulty: medium",
		"Items requested: 5",
		"User name: Maya",
		"nutrition, exercise",
		"None",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildRejections(t *testing.T) {
	tests := []struct {
		name       string
		rejections []string
		max        int
		want       string
	}{
		{"empty", nil, 10, "None"},
		{"single", []string{"too similar"}, 10, "1. too similar"},
		{"respects max keeps newest", []string{"first", "second", "third"}, 2, "1. second\n2. third"},
		{"zero max keeps all", []string{"a", "b"}, 0, "1. a\n2. b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildRejections(tt.rejections, tt.max)
			if got != tt.want {
				t.Errorf("buildRejections() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentHashNormalizes(t *testing.T) {
	a := ContentHash("What is  Folic Acid?")
	b := ContentHash("what is folic acid?")
	if a != b {
		t.Error("case and whitespace variants hash differently")
	}
	c := ContentHash("what is iron?")
	if a == c {
		t.Error("distinct texts hash identically")
	}
}
