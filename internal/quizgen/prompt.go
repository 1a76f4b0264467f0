package quizgen

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are a prenatal educator creating quiz questions for expecting parents.

Rules:
- Generate the requested number of multiple-choice questions appropriate for the given pregnancy week and difficulty.
- Questions cover fetal development, maternal health, nutrition, and preparation relevant to that week.
- Use plain text. Keep a warm, reassuring tone; never alarming.
- Provide exactly 4 options per question where exactly one is correct. The answer_key must match one option verbatim.
- Distractors should reflect common misconceptions, not random values.
- Keep each explanation short and factual, suitable to show after the user answers.
- Never give medical advice; stick to general educational content.
- Do not repeat or closely paraphrase anything in the "previously rejected" list.`

const flashcardSystemPrompt = `You are a prenatal educator creating study flashcards for expecting parents.

Rules:
- Generate the requested number of flashcards appropriate for the given pregnancy week.
- The front is a term or short question; the back is a one-or-two-sentence answer.
- Use plain text. Keep a warm, reassuring tone; never alarming.
- Never give medical advice; stick to general educational content.
- Do not repeat or closely paraphrase anything in the "previously rejected" list.`

// systemPromptFor returns the system prompt for a content type.
func systemPromptFor(contentType string) string {
	if contentType == TypeFlashcard {
		return flashcardSystemPrompt
	}
	return quizSystemPrompt
}

// buildUserMessage constructs the user message from the request, the
// accumulated rejection reasons, and Config limits.
func buildUserMessage(req Request, rejections []string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pregnancy week: %d\n", req.Week)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Items requested: %d\n", req.Count)

	if req.Profile.Name != "" {
		fmt.Fprintf(&b, "User name: %s\n", req.Profile.Name)
	}
	if len(req.Profile.Interests) > 0 {
		fmt.Fprintf(&b, "User interests: %s\n", strings.Join(req.Profile.Interests, ", "))
	}

	b.WriteString("\nPreviously rejected (do not produce anything similar):\n")
	b.WriteString(buildRejections(rejections, cfg.MaxRejectionReasons))

	return b.String()
}

// buildRejections formats accumulated rejection reasons for the prompt,
// respecting the max limit. Returns "None" for the first attempt.
func buildRejections(rejections []string, max int) string {
	if len(rejections) == 0 {
		return "None"
	}

	// Keep only the most recent N reasons.
	if max > 0 && len(rejections) > max {
		rejections = rejections[len(rejections)-max:]
	}

	var b strings.Builder
	for i, r := range rejections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return strings.TrimRight(b.String(), "\n")
}
