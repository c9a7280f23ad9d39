package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// RoleAssistant is the message role used for every review reply.
	RoleAssistant = "assistant"
	// ModelName is the model revu reports and answers to on the chat wire.
	ModelName = "revu-mock"
)

// ChatEnvelope is the chat-completion shaped wrapper historical callers expect:
// the AnalysisResult is serialized to text and nested in choices[0].message.content.
// Optional fields stay empty for the bare wire shape.
type ChatEnvelope struct {
	ID      string       `json:"id,omitempty"`
	Object  string       `json:"object,omitempty"`
	Created int64        `json:"created,omitempty"`
	Model   string       `json:"model,omitempty"`
	Choices []ChatChoice `json:"choices"`
}

// ChatChoice is one completion choice; revu always answers with exactly one.
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

// ChatMessage carries the serialized AnalysisResult as its Content.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrEmptyEnvelope is returned when an envelope carries no choices to decode.
var ErrEmptyEnvelope = errors.New("envelope has no choices")

// NewChatEnvelope serializes result into a single-choice envelope.
func NewChatEnvelope(result *AnalysisResult) (*ChatEnvelope, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshaling analysis result: %w", err)
	}
	return &ChatEnvelope{
		Choices: []ChatChoice{{
			Message: ChatMessage{Role: RoleAssistant, Content: string(data)},
		}},
	}, nil
}

// ParseChatContent decodes an AnalysisResult from a choice's message content.
func ParseChatContent(content string) (*AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("decoding analysis result: %w", err)
	}
	return &result, nil
}

// Result unwraps the first choice of the envelope.
func (e *ChatEnvelope) Result() (*AnalysisResult, error) {
	if len(e.Choices) == 0 {
		return nil, ErrEmptyEnvelope
	}
	return ParseChatContent(e.Choices[0].Message.Content)
}
