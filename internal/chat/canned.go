// Package chat implements the floating "PADdy" chat bar. The assistant is a
// placeholder: replies are canned, matched against the suggested question
// pills, with an echo fallback for free-form input.
package chat

import (
	"fmt"
	"strings"
)

const Greeting = "Hi, I'm PADdy."

// Suggestion is one pill with its canned answer.
type Suggestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var suggestions = []Suggestion{
	{
		Question: "What industries have the most jobs?",
		Answer:   "Based on the data, the top industries are shown in the chart above.",
	},
	{
		Question: "What other data can I examine?",
		Answer:   "You can explore skills data and training programs in other pages.",
	},
	{
		Question: "What skills are suitable for entry-level training programs?",
		Answer:   "Entry-level roles (Job Zones 1-2) typically require basic communication, digital literacy, and fundamental technical skills.",
	},
	{
		Question: "How do skills in this industry connect to the PAD objectives?",
		Answer:   "The skills shown above directly support the project activities and objectives outlined in the PADs.",
	},
}

func Suggestions() []Suggestion {
	out := make([]Suggestion, len(suggestions))
	copy(out, suggestions)
	return out
}

// Reply answers a user message. Pill questions get their canned answer;
// anything else gets the still-learning echo.
func Reply(message string) string {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return Greeting
	}

	normalized := strings.ToLower(msg)
	for _, s := range suggestions {
		if strings.ToLower(s.Question) == normalized {
			return s.Answer
		}
	}
	return fmt.Sprintf("Thanks for your question: '%s'. I'm still learning!", msg)
}
