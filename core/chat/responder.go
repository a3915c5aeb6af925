// Package chat answers tutoring questions from a fixed keyword table.
package chat

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutorai/core"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

const greeting = "I'm here to help you with your tutoring needs. "

type rule struct {
	keywords []string
	text     string
}

// rules are tried in order; the first one with a keyword contained in the message wins.
var rules = []rule{
	{
		keywords: []string{"student"},
		text:     "I can help you manage students, track their progress, and assign them to courses.",
	},
	{
		keywords: []string{"course"},
		text:     "I can assist with creating courses, managing content, and tracking student enrollment.",
	},
	{
		keywords: []string{"task", "assignment"},
		text:     "I can help you create assignments, set due dates, and track completion status.",
	},
	{
		keywords: []string{"grade", "score"},
		text:     "I can help you understand grading systems and track student performance.",
	},
}

var fallback = "You can ask me about managing students, creating courses, assigning tasks, or general tutoring advice."

type (
	Message struct {
		Message string      `json:"message" validate:"required"`
		Context interface{} `json:"context,omitempty"`
	}

	Reply struct {
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}
)

// Validate rejects blank messages without modifying m.
func (m *Message) Validate(validate *validator.Validate) error {
	check := *m
	check.Message = core.CleanString(m.Message)
	return validate.Struct(check)
}

// Answer returns the canned answer for message. Matching is case-insensitive.
func Answer(message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return greeting + r.text
			}
		}
	}
	return greeting + fallback
}

// Respond builds the Reply to message, stamped with at.
func Respond(message string, at time.Time) Reply {
	return Reply{
		Response:  Answer(message),
		Timestamp: at.UTC().Format(TimestampFormat),
	}
}
