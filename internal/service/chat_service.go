// FILE: internal/service/chat_service.go
package service

import (
	"context"
	"strings"
	"time"

	"ai-chat-be/internal/constant"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/contract"
	"ai-chat-be/pkg/attachment"
	"ai-chat-be/pkg/llm"
	"ai-chat-be/pkg/search"

	"github.com/google/uuid"
)

const searchMaxResults = 5

type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetUserSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	GetSessionMessages(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
	ContinueSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error)
	Search(ctx context.Context, query string) []string
}

type chatService struct {
	store               contract.Store
	provider            llm.LLMProvider
	fetcher             attachment.Fetcher
	searcher            search.Searcher
	logger              logger.ILogger
	enableUserProfiling bool
}

func NewChatService(
	store contract.Store,
	provider llm.LLMProvider,
	fetcher attachment.Fetcher,
	searcher search.Searcher,
	log logger.ILogger,
	enableUserProfiling bool,
) IChatService {
	return &chatService{
		store:               store,
		provider:            provider,
		fetcher:             fetcher,
		searcher:            searcher,
		logger:              log,
		enableUserProfiling: enableUserProfiling,
	}
}

// SendMessage runs the full exchange: resolve or create the session, persist
// the user turn, build the bounded prompt window, call the model, persist the
// assistant turn and restamp the session. The sequence is not transactional;
// a fault mid-way leaves the already-written turns in place.
func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	// 1. Resolve or create session
	session, isNew, err := s.resolveSession(ctx, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	// 2. Append user turn. Content stays verbatim; attachment URLs are kept
	// on the record and only expanded at prompt time.
	userMessage := &entity.ChatMessage{
		Id:          uuid.New(),
		SessionId:   session.Id,
		UserId:      userId,
		Role:        constant.ChatMessageRoleUser,
		Content:     req.Message,
		Timestamp:   time.Now().UTC(),
		Attachments: req.Attachments,
	}
	if err := s.store.ChatMessages().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	// 3. Build prompt from the recent window
	history, err := s.store.ChatMessages().FindAllBySessionId(ctx, session.Id)
	if err != nil {
		return nil, err
	}
	prompt, err := s.buildPrompt(ctx, userId, history)
	if err != nil {
		return nil, err
	}

	// 4. One completion call, first choice
	reply, err := s.provider.Chat(ctx, prompt)
	if err != nil {
		s.logger.Error("chat", "completion failed", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	// 5. Append assistant turn
	assistantMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		UserId:    userId,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   reply,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.ChatMessages().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	// 6. Derive the title from the first user message, once
	if isNew || session.Title == constant.DefaultSessionTitle {
		session.Title = deriveTitle(req.Message)
	}
	if err := s.store.ChatSessions().Update(ctx, session); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Message:   reply,
		SessionId: session.Id,
		Timestamp: assistantMessage.Timestamp,
	}, nil
}

func (s *chatService) resolveSession(ctx context.Context, userId, sessionId uuid.UUID) (*entity.ChatSession, bool, error) {
	if sessionId != uuid.Nil {
		session, _ := s.store.ChatSessions().FindById(ctx, sessionId)
		if session == nil || session.UserId != userId {
			// Foreign sessions look identical to missing ones.
			return nil, false, ErrNotFound
		}
		return session, false, nil
	}

	now := time.Now().UTC()
	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.DefaultSessionTitle,
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}
	if err := s.store.ChatSessions().Create(ctx, session); err != nil {
		return nil, false, err
	}
	return session, true, nil
}

// buildPrompt assembles system turns followed by the most recent history
// window, role-for-role. Roles other than user/assistant are dropped. User
// turns carrying attachment URLs get the extracted text appended under a
// marker before entering the prompt; a fetch fault fails the whole send.
func (s *chatService) buildPrompt(ctx context.Context, userId uuid.UUID, history []*entity.ChatMessage) ([]llm.Message, error) {
	prompt := make([]llm.Message, 0, constant.ChatHistoryWindowSize+2)

	if s.enableUserProfiling {
		user, _ := s.store.Users().FindById(ctx, userId)
		if user != nil && user.Profile != nil && user.Profile.Context != "" {
			prompt = append(prompt, llm.Message{
				Role:    constant.ChatMessageRoleSystem,
				Content: "Context: " + user.Profile.Context,
			})
		}
	}

	prompt = append(prompt, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.SystemPrompt,
	})

	window := history
	if len(window) > constant.ChatHistoryWindowSize {
		window = window[len(window)-constant.ChatHistoryWindowSize:]
	}

	for _, msg := range window {
		if msg.Role != constant.ChatMessageRoleUser && msg.Role != constant.ChatMessageRoleAssistant {
			continue
		}
		content := msg.Content
		if msg.Role == constant.ChatMessageRoleUser {
			expanded, err := s.expandAttachments(ctx, content, msg.Attachments)
			if err != nil {
				return nil, err
			}
			content = expanded
		}
		prompt = append(prompt, llm.Message{
			Role:    msg.Role,
			Content: content,
		})
	}

	return prompt, nil
}

func (s *chatService) expandAttachments(ctx context.Context, content string, urls []string) (string, error) {
	for _, url := range urls {
		text, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return "", err
		}
		marker := constant.AttachmentTextMarker
		if strings.HasSuffix(strings.ToLower(strings.SplitN(url, "?", 2)[0]), ".pdf") {
			marker = constant.AttachmentPdfTextMarker
		}
		content += "\n\n" + marker + ":\n" + text
	}
	return content, nil
}

func deriveTitle(message string) string {
	if len(message) > constant.SessionTitleMaxLength {
		return message[:constant.SessionTitleMaxLength] + "..."
	}
	return message
}

func (s *chatService) GetUserSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	sessions, err := s.store.ChatSessions().FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, sessionToResponse(session))
	}
	return responses, nil
}

func (s *chatService) GetSessionMessages(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	session, _ := s.store.ChatSessions().FindById(ctx, sessionId)
	if session == nil || session.UserId != userId {
		return nil, ErrNotFound
	}

	messages, err := s.store.ChatMessages().FindAllBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, &dto.MessageResponse{
			Id:          msg.Id,
			SessionId:   msg.SessionId,
			Role:        msg.Role,
			Content:     msg.Content,
			Timestamp:   msg.Timestamp,
			Attachments: msg.Attachments,
		})
	}
	return responses, nil
}

func (s *chatService) ContinueSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	session, _ := s.store.ChatSessions().FindById(ctx, sessionId)
	if session == nil || session.UserId != userId {
		return nil, ErrNotFound
	}

	session.IsActive = true
	if err := s.store.ChatSessions().Update(ctx, session); err != nil {
		return nil, err
	}
	return sessionToResponse(session), nil
}

// Search is best-effort: any backend failure degrades to an empty result set
// instead of failing the request.
func (s *chatService) Search(ctx context.Context, query string) []string {
	results, err := s.searcher.Search(ctx, query, searchMaxResults)
	if err != nil {
		s.logger.Warn("chat", "search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return []string{}
	}
	if results == nil {
		results = []string{}
	}
	return results
}

func sessionToResponse(session *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        session.Id,
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		IsActive:  session.IsActive,
	}
}
