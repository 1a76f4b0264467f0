package llm

import "testing"

func TestModelCostArithmetic(t *testing.T) {
	c := ModelCost{InputPerMTok: 2.5, OutputPerMTok: 10}

	got := c.Cost(1_000_000, 0)
	if got != 2.5 {
		t.Errorf("input-only cost = %v, want 2.5", got)
	}
	got = c.Cost(0, 500_000)
	if got != 5 {
		t.Errorf("output-only cost = %v, want 5", got)
	}
	if c.Cost(0, 0) != 0 {
		t.Error("zero tokens should cost nothing")
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("gpt-4o-mini") == nil {
		t.Error("default generation model missing from the table")
	}
	if LookupCost("claude-haiku-4-5-20251001") == nil {
		t.Error("default anthropic model missing from the table")
	}
	if LookupCost("gemini-2.0-flash") == nil {
		t.Error("default gemini model missing from the table")
	}

	emb := LookupCost("text-embedding-3-small")
	if emb == nil {
		t.Fatal("default embedding model missing from the table")
	}
	if emb.OutputPerMTok != 0 {
		t.Errorf("embedding output price = %v, want 0", emb.OutputPerMTok)
	}

	if LookupCost("some-unknown-model") != nil {
		t.Error("unknown model should return nil")
	}
}
