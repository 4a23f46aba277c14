package rematch

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/rematch/syntax"
)

// TestMatch_Scenarios covers the reference scenarios and general matching
// behavior through the public API.
func TestMatch_Scenarios(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a*4.+hi", "aaaaaa4uhi", true},
		{"a*4.+hi", "4uhi", true},
		{"a*4.+hi", "meow", false},
		{"[a-z]+", "abcxyz", true},
		{"[^0-9]+", "12a", false},

		// Whole-string semantics: prefixes and suffixes are not matches.
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{"abc", "zabc", false},
		{"b+", "abba", false},

		// Empty input is a valid input.
		{"a*", "", true},
		{"a+", "", false},
		{".", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := re.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestDotUniversality: '.' accepts every single character and nothing else.
func TestDotUniversality(t *testing.T) {
	re := MustCompile(".")

	for _, r := range []rune{'a', 'Z', '0', ' ', '.', '*', '[', 'é', '中', '😀'} {
		if !re.MatchString(string(r)) {
			t.Errorf("MatchString(%q) = false, want true", r)
		}
	}
	if re.MatchString("") {
		t.Error("'.' should not match the empty string")
	}
	if re.MatchString("ab") {
		t.Error("'.' should not match two characters")
	}
}

// TestClassNegationDuality compiles a class and its negation and checks
// they disagree on every probed character.
func TestClassNegationDuality(t *testing.T) {
	plain := MustCompile("[a-f0-3_]")
	negated := MustCompile("[^a-f0-3_]")

	for r := rune(1); r < 0x300; r++ {
		s := string(r)
		if plain.MatchString(s) == negated.MatchString(s) {
			t.Fatalf("class and negated class agree on %q", r)
		}
	}
}

// TestCompile_Errors checks the public error surface.
func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"empty pattern", "", syntax.ErrInvalidPattern},
		{"leading star", "*abc", syntax.ErrInvalidPattern},
		{"leading plus", "+abc", syntax.ErrInvalidPattern},
		{"unmatched bracket", "[a-z", syntax.ErrUnmatchedBracket},
		{"reversed range", "[z-a]", syntax.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.pattern)
			}
			if re != nil {
				t.Errorf("Compile(%q) returned a value with error", tt.pattern)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestMustCompile checks the panic contract.
func TestMustCompile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		re := MustCompile("[a-z]+")
		if !re.MatchString("ok") {
			t.Error("expected match")
		}
	})

	t.Run("invalid panics", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("MustCompile did not panic")
			}
			msg, ok := r.(string)
			if !ok || !strings.Contains(msg, "rematch: Compile(`*`)") {
				t.Errorf("panic = %v, want compile message", r)
			}
		}()
		MustCompile("*")
	})
}

// TestRegex_String returns the source pattern unchanged.
func TestRegex_String(t *testing.T) {
	for _, pattern := range []string{"a*4.+hi", "[^0-9]+", "exact"} {
		if got := MustCompile(pattern).String(); got != pattern {
			t.Errorf("String() = %q, want %q", got, pattern)
		}
	}
}

// TestRegex_Concurrent shares one compiled pattern across goroutines.
func TestRegex_Concurrent(t *testing.T) {
	re := MustCompile("[a-z]+[0-9]*")

	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func() {
			ok := true
			for i := 0; i < 500; i++ {
				if !re.MatchString("abc123") || re.MatchString("123abc") {
					ok = false
				}
			}
			done <- ok
		}()
	}
	for g := 0; g < 8; g++ {
		if !<-done {
			t.Fatal("concurrent matching produced a wrong result")
		}
	}
}

// TestCompileWithConfig threads a custom configuration through the public
// API.
func TestCompileWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.EnablePrefilter = false

	re, err := CompileWithConfig("ab.*yz", config)
	if err != nil {
		t.Fatalf("CompileWithConfig failed: %v", err)
	}
	if !re.MatchString("abcxyz") || re.MatchString("abc") {
		t.Error("unexpected match results")
	}
}

// TestCompileSet exercises the multi-pattern surface from the root package.
func TestCompileSet(t *testing.T) {
	set, err := CompileSet([]string{"[0-9]+", "[a-z]+"})
	if err != nil {
		t.Fatalf("CompileSet failed: %v", err)
	}
	if got := set.Matches([]byte("hello")); len(got) != 1 || got[0] != 1 {
		t.Errorf("Matches = %v, want [1]", got)
	}
	if set.IsMatch([]byte("!!")) {
		t.Error("IsMatch should be false")
	}
}
