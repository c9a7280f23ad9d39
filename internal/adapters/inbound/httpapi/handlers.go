package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/revu-dev/revu/internal/domain"
	"github.com/revu-dev/revu/internal/domain/rules"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type reviewRequest struct {
	Code string `json:"code"`
}

// handleReview accepts {"code": "..."} or a text/plain body and answers with
// the AnalysisResult.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var code string
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		code = string(body)
	} else {
		var req reviewRequest
		if err := json.Unmarshal(body, &req); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
			return
		}
		code = req.Code
	}

	if strings.TrimSpace(code) != "" && r.URL.Query().Get("force") != "true" && !s.detect(code) {
		s.writeError(w, http.StatusUnprocessableEntity, domain.ErrNotCode.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, s.svc.Review(r.Context(), code))
}

func (s *Server) handleChecks(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, rules.Catalog())
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// text returns the message content whether it was sent as a plain string or
// as an array of content parts.
func (m chatMessage) text() (string, error) {
	var s string
	if err := json.Unmarshal(m.Content, &s); err == nil {
		return s, nil
	}
	var parts []contentPart
	if err := json.Unmarshal(m.Content, &parts); err != nil {
		return "", fmt.Errorf("unsupported message content: %w", err)
	}
	var b strings.Builder
	for _, p := range parts {
		if p.Type == "text" {
			b.WriteString(p.Text)
		}
	}
	return b.String(), nil
}

type apiError struct {
	Error apiErrorBody `json:"error"`
}

type apiErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (s *Server) writeAPIError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, apiError{Error: apiErrorBody{Message: msg, Type: "invalid_request_error"}})
}

// handleChatCompletions reviews the last user message and answers with a
// chat-completion envelope.
func (s *Server) handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeAPIError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}

	var source string
	found := false
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role != "user" {
			continue
		}
		text, err := req.Messages[i].text()
		if err != nil {
			s.writeAPIError(w, http.StatusBadRequest, err.Error())
			return
		}
		source, found = text, true
		break
	}
	if !found {
		s.writeAPIError(w, http.StatusBadRequest, "messages must contain a user message")
		return
	}

	env, err := s.svc.Envelope(r.Context(), source)
	if err != nil {
		logerr.WithError(s.logE, err).Error("build chat envelope")
		s.writeAPIError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	env.ID = "chatcmpl-" + uuid.NewString()
	env.Object = "chat.completion"
	env.Created = s.now().Unix()
	env.Model = domain.ModelName
	if req.Model != "" {
		env.Model = req.Model
	}
	for i := range env.Choices {
		env.Choices[i].FinishReason = "stop"
	}
	s.writeJSON(w, http.StatusOK, env)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		s.writeError(w, http.StatusBadRequest, "reading body failed")
		return nil, false
	}
	return body, true
}
