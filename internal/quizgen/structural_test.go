package quizgen

import "testing"

func validQuizCandidate() Candidate {
	return Candidate{
		Question:    "Which nutrient supports neural tube development?",
		Options:     []string{"Folic acid", "Vitamin C", "Calcium", "Iron"},
		AnswerKey:   "Folic acid",
		Explanation: "Folic acid supports early neural development.",
	}
}

func TestQuizValidator(t *testing.T) {
	v := &QuizValidator{}
	req := testRequest(1)

	tests := []struct {
		name   string
		mutate func(*Candidate)
		wantOK bool
	}{
		{"valid", func(*Candidate) {}, true},
		{"empty question", func(c *Candidate) { c.Question = "" }, false},
		{"three options", func(c *Candidate) { c.Options = c.Options[:3] }, false},
		{"five options", func(c *Candidate) { c.Options = append(c.Options, "Zinc") }, false},
		{"duplicate options", func(c *Candidate) { c.Options[1] = c.Options[0] }, false},
		{"blank option", func(c *Candidate) { c.Options[2] = "  " }, false},
		{"answer key mismatch", func(c *Candidate) { c.AnswerKey = "Zinc" }, false},
		{"empty explanation ok", func(c *Candidate) { c.Explanation = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validQuizCandidate()
			tt.mutate(&c)
			err := v.Validate(&c, req)
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestFlashcardValidator(t *testing.T) {
	v := &FlashcardValidator{}
	req := testRequest(1)
	req.ContentType = TypeFlashcard

	tests := []struct {
		name   string
		cand   Candidate
		wantOK bool
	}{
		{"valid", Candidate{Front: "Colostrum", Back: "First milk, rich in antibodies."}, true},
		{"empty front", Candidate{Front: " ", Back: "text"}, false},
		{"empty back", Candidate{Front: "Term", Back: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.cand, req)
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
