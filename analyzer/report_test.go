package analyzer

import (
	"bytes"
	"testing"
)

func TestReportTop(t *testing.T) {
	report := Analyze("a.a b.b a.a b.b a.a c.c", Options{Length: 1, Exact: true})
	// counts: a.a=3, b.b=2, c.c=1 -> ascending: c.c, b.b, a.a

	tests := []struct {
		name     string
		k        int
		expected []string
	}{
		{"zero_means_all", 0, []string{"c.c", "b.b", "a.a"}},
		{"negative_means_all", -1, []string{"c.c", "b.b", "a.a"}},
		{"top_two", 2, []string{"b.b", "a.a"}},
		{"top_one", 1, []string{"a.a"}},
		{"k_beyond_len", 10, []string{"c.c", "b.b", "a.a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := report.Top(tt.k)
			if len(got) != len(tt.expected) {
				t.Fatalf("Top(%d) returned %d entries, want %d", tt.k, len(got), len(tt.expected))
			}
			for i, seq := range tt.expected {
				if got[i].Sequence != seq {
					t.Errorf("Top(%d)[%d] = %q, want %q", tt.k, i, got[i].Sequence, seq)
				}
			}
		})
	}
}

func TestWriteEntries(t *testing.T) {
	entries := []Entry{
		{Sequence: "i32.const i32.add", Count: 1},
		{Sequence: "local.get i32.add", Count: 4},
	}

	var buf bytes.Buffer
	if err := WriteEntries(&buf, entries); err != nil {
		t.Fatal(err)
	}
	want := "i32.const i32.add: 1\nlocal.get i32.add: 4\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteTextEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	report := Analyze("", Options{})
	if err := report.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty report produced output %q", buf.String())
	}
}
