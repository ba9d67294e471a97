package interview

import "testing"

func TestLoadPool(t *testing.T) {
	pool, err := LoadPool()
	if err != nil {
		t.Fatalf("load pool: %v", err)
	}

	if got := pool.bucket(TypeTechnical, "Software Engineer", LevelMid); len(got) != 5 {
		t.Fatalf("expected 5 mid technical questions, got %d", len(got))
	}
	if got := pool.bucket(TypeBehavioral, DefaultRole, LevelMid); len(got) != 1 {
		t.Fatalf("expected 1 default behavioral mid question, got %d", len(got))
	}
	if got := pool.bucket(TypeTechnical, "Nonexistent Role", LevelMid); got != nil {
		t.Fatalf("expected nil for missing bucket, got %v", got)
	}
}

func TestParsePool_RejectsUnknownKeys(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{name: "UnknownType", yaml: "quizzes:\n  \"Role\":\n    mid:\n      - \"q\"\n"},
		{name: "UnknownLevel", yaml: "technical:\n  \"Role\":\n    expert:\n      - \"q\"\n"},
		{name: "Malformed", yaml: "technical: [not, a, map]\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := parsePool([]byte(c.yaml)); err == nil {
				t.Fatalf("expected error for %s", c.name)
			}
		})
	}
}

func TestNormalizeType(t *testing.T) {
	cases := []struct {
		in   string
		want Type
	}{
		{in: "technical", want: TypeTechnical},
		{in: "behavioral", want: TypeBehavioral},
		{in: "leadership", want: TypeLeadership},
		{in: "Technical", want: TypeLeadership},
		{in: "system-design", want: TypeLeadership},
		{in: "", want: TypeLeadership},
	}
	for _, c := range cases {
		if got := NormalizeType(c.in); got != c.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{in: "entry", want: LevelEntry},
		{in: "mid", want: LevelMid},
		{in: "senior", want: LevelSenior},
		{in: "junior", want: LevelSenior},
		{in: "staff", want: LevelSenior},
		{in: "", want: LevelSenior},
	}
	for _, c := range cases {
		if got := NormalizeLevel(c.in); got != c.want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGatherByPriority(t *testing.T) {
	pool, err := LoadPool()
	if err != nil {
		t.Fatalf("load pool: %v", err)
	}

	got := pool.gatherByPriority(TypeBehavioral, "Software Engineer", LevelMid)

	// exact bucket (2) + same role other levels (4) + other roles at mid
	// (2+2+1) + the default bucket appended again (1)
	if len(got) != 12 {
		t.Fatalf("expected 12 candidates, got %d: %v", len(got), got)
	}
	if got[0] != "Tell me about a conflict you had over technical direction and how you resolved it." {
		t.Fatalf("exact bucket should come first, got %q", got[0])
	}
	if got[2] != "Tell me about a time you learned a new technology quickly." {
		t.Fatalf("same-role entry questions should follow, got %q", got[2])
	}

	// the role-agnostic default bucket shows up both as an "other role" and
	// as the trailing fallback; dedup is the selector's job
	last, prev := got[len(got)-1], got[len(got)-2]
	if last != "Tell me about a conflict you resolved at work." || prev != last {
		t.Fatalf("expected trailing default bucket duplicate, got %q / %q", prev, last)
	}
}
