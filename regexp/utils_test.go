package regexp

import "testing"

func TestNeedsPCRE(t *testing.T) {
	cases := map[string]bool{
		"a+":           false,
		`\d{3}-\d{4}`:  false,
		"(?P<y>\\d+)":  false,
		`\\1`:          false,
		"(?<=a)b":      true,
		"(?!x)":        true,
		"(?>ab)":       true,
		`(a)\1`:        true,
		`\h+`:          true,
		"(?<name>a)":   true,
		"(?'name'a)":   true,
		`\k<name>`:     true,
		"(?#comment)a": true,
		"x(*COMMIT)y":  true,
	}

	for pattern, want := range cases {
		if got := needsPCRE(pattern); got != want {
			t.Fatalf("needsPCRE(%q): got %v, want %v", pattern, got, want)
		}
	}
}
