package chat

import (
	"fmt"
	"reflect"
	"testing"
)

func TestHistoryLines(t *testing.T) {
	t.Run("renders role and content", func(t *testing.T) {
		messages := []Message{
			{Role: "user", Content: "Can I apply for a work permit?"},
			{Role: "assistant", Content: "Form I-765 covers employment authorization."},
		}

		got := historyLines(messages, historyWindow)
		want := []string{
			"user: Can I apply for a work permit?",
			"assistant: Form I-765 covers employment authorization.",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("keeps only the tail of long transcripts", func(t *testing.T) {
		messages := make([]Message, 0, 25)
		for i := range 25 {
			messages = append(messages, Message{
				Role:    "user",
				Content: fmt.Sprintf("message %d", i),
			})
		}

		got := historyLines(messages, historyWindow)
		if len(got) != historyWindow {
			t.Fatalf("lines = %d, want %d", len(got), historyWindow)
		}
		if got[0] != "user: message 15" {
			t.Errorf("first line = %q, want user: message 15", got[0])
		}
		if got[len(got)-1] != "user: message 24" {
			t.Errorf("last line = %q, want user: message 24", got[len(got)-1])
		}
	})

	t.Run("empty transcript yields no lines", func(t *testing.T) {
		if got := historyLines(nil, historyWindow); len(got) != 0 {
			t.Errorf("expected no lines, got %v", got)
		}
	})
}
