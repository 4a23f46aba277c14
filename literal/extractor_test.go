package literal

import (
	"testing"

	"github.com/coregx/rematch/syntax"
)

func mustTokens(t *testing.T, pattern string) []syntax.Token {
	t.Helper()
	tokens, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	return tokens
}

// TestExtract checks run boundaries, prefix marking, and completeness.
func TestExtract(t *testing.T) {
	tests := []struct {
		pattern  string
		runs     []string
		prefix   []bool
		complete bool
	}{
		{"abc", []string{"abc"}, []bool{true}, true},
		{"a*4.+hi", []string{"4", "hi"}, []bool{false, false}, false},
		{"ab[0-9]cd", []string{"ab", "cd"}, []bool{true, false}, false},
		{"head[0-9]*", []string{"head"}, []bool{true}, false},
		{".*tail", []string{"tail"}, []bool{false}, false},
		{".*", nil, nil, false},
		{"[a-z]+", nil, nil, false},
		// A repeated literal is optional or multiple, never required verbatim.
		{"a*b", []string{"b"}, []bool{false}, false},
		{"ab*c", []string{"a", "c"}, []bool{true, false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := Extract(mustTokens(t, tt.pattern))

			if seq.Len() != len(tt.runs) {
				t.Fatalf("got %d runs, want %d", seq.Len(), len(tt.runs))
			}
			for i := range tt.runs {
				run := seq.Get(i)
				if run.String() != tt.runs[i] {
					t.Errorf("run %d = %q, want %q", i, run.String(), tt.runs[i])
				}
				if run.Prefix != tt.prefix[i] {
					t.Errorf("run %d prefix = %v, want %v", i, run.Prefix, tt.prefix[i])
				}
			}
			if seq.Complete() != tt.complete {
				t.Errorf("Complete() = %v, want %v", seq.Complete(), tt.complete)
			}
			if seq.IsEmpty() != (len(tt.runs) == 0) {
				t.Errorf("IsEmpty() = %v, want %v", seq.IsEmpty(), len(tt.runs) == 0)
			}
		})
	}
}

// TestSeq_Longest checks longest-run selection and the empty case.
func TestSeq_Longest(t *testing.T) {
	seq := Extract(mustTokens(t, "a*4.+hi"))
	run, ok := seq.Longest()
	if !ok {
		t.Fatal("Longest() reported empty sequence")
	}
	if run.String() != "hi" {
		t.Errorf("Longest() = %q, want %q", run.String(), "hi")
	}

	empty := Extract(mustTokens(t, ".*"))
	if _, ok := empty.Longest(); ok {
		t.Error("Longest() on empty sequence should report false")
	}
}

// TestSeq_LongestTieKeepsEarliest pins the tie-break: the earlier run wins.
func TestSeq_LongestTieKeepsEarliest(t *testing.T) {
	seq := Extract(mustTokens(t, "ab.cd"))
	run, ok := seq.Longest()
	if !ok {
		t.Fatal("Longest() reported empty sequence")
	}
	if run.String() != "ab" {
		t.Errorf("Longest() = %q, want %q", run.String(), "ab")
	}
}
