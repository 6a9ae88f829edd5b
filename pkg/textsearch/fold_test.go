package textsearch

import "testing"

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Conceição":     "conceicao",
		"JOSÉ":          "jose",
		"A\u03011B2":    "a1b2",
		"Ángela Müller": "angela muller",
		"":              "",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("A1B2", "a1b2") {
		t.Fatalf("expected case-insensitive match")
	}
	if !Contains("A1B2", "A\u03011b2") {
		t.Fatalf("expected accent-insensitive match")
	}
	if !Contains("João da Silva", "joao") {
		t.Fatalf("expected folded match")
	}
	if !Contains("anything", "") {
		t.Fatalf("empty needle must match")
	}
	if Contains("Maria", "jo") {
		t.Fatalf("unexpected match")
	}
}
