package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"ai-chat-be/internal/constant"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/memory"
	"ai-chat-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// fakeProvider records the prompts it receives and replies with a canned answer.
type fakeProvider struct {
	prompts [][]llm.Message
	reply   string
	err     error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	copied := make([]llm.Message, len(history))
	copy(copied, history)
	f.prompts = append(f.prompts, copied)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type fakeFetcher struct {
	texts map[string]string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if text, ok := f.texts[url]; ok {
		return text, nil
	}
	return "", errors.New("fetch failed")
}

type fakeSearcher struct {
	results []string
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) > maxResults {
		return f.results[:maxResults], nil
	}
	return f.results, nil
}

type chatFixture struct {
	store    *memory.Store
	provider *fakeProvider
	searcher *fakeSearcher
	service  IChatService
	userId   uuid.UUID
}

func newChatFixture(t *testing.T, profiling bool) *chatFixture {
	t.Helper()
	store := memory.NewStore()
	provider := &fakeProvider{reply: "Hello back"}
	searcher := &fakeSearcher{}
	fetcher := &fakeFetcher{texts: map[string]string{
		"http://files.test/report.pdf": "pdf contents",
		"http://files.test/notes.txt":  "plain contents",
	}}

	userId := uuid.New()
	err := store.Users().Create(context.Background(), &entity.User{
		Id:    userId,
		Email: "user@example.com",
		Name:  "User",
		Profile: &entity.UserProfile{
			Context: "Prefers concise answers",
		},
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	return &chatFixture{
		store:    store,
		provider: provider,
		searcher: searcher,
		service:  NewChatService(store, provider, fetcher, searcher, noopLogger{}, profiling),
		userId:   userId,
	}
}

func TestSendMessageCreatesSession(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	res, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{
		Message: "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello back", res.Message)
	assert.NotEqual(t, uuid.Nil, res.SessionId)

	sessions, err := f.store.ChatSessions().FindAllByUserId(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Hello there", sessions[0].Title)

	messages, err := f.store.ChatMessages().FindAllBySessionId(ctx, res.SessionId)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, messages[1].Role)
}

func TestSendMessageTitleTruncation(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	long := strings.Repeat("a", 80)
	res, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: long})
	require.NoError(t, err)

	session, err := f.store.ChatSessions().FindById(ctx, res.SessionId)
	require.NoError(t, err)
	assert.Equal(t, long[:constant.SessionTitleMaxLength]+"...", session.Title)
	assert.Len(t, session.Title, constant.SessionTitleMaxLength+3)
}

func TestSendMessageTitleRewrittenOnce(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	first, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "First question"})
	require.NoError(t, err)

	_, err = f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{
		Message:   "Second question",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)

	session, err := f.store.ChatSessions().FindById(ctx, first.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "First question", session.Title)
}

func TestSendMessageHistoryWindow(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	first, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "turn 0"})
	require.NoError(t, err)
	for i := 1; i < 25; i++ {
		_, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{
			Message:   fmt.Sprintf("turn %d", i),
			SessionId: first.SessionId,
		})
		require.NoError(t, err)
	}

	last := f.provider.prompts[len(f.provider.prompts)-1]

	// One fixed system turn plus at most the window of history.
	var history []llm.Message
	for _, msg := range last {
		if msg.Role != constant.ChatMessageRoleSystem {
			history = append(history, msg)
		}
	}
	assert.Len(t, history, constant.ChatHistoryWindowSize)

	// The newest user turn is always the final prompt message.
	assert.Equal(t, "turn 24", last[len(last)-1].Content)
}

func TestSendMessageForeignSession(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	res, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "mine"})
	require.NoError(t, err)

	intruder := uuid.New()
	_, err = f.service.SendMessage(ctx, intruder, &dto.ChatRequest{
		Message:   "yours",
		SessionId: res.SessionId,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendMessageUnknownSession(t *testing.T) {
	f := newChatFixture(t, false)

	_, err := f.service.SendMessage(context.Background(), f.userId, &dto.ChatRequest{
		Message:   "hello",
		SessionId: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendMessageProfileContext(t *testing.T) {
	f := newChatFixture(t, true)
	ctx := context.Background()

	_, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	prompt := f.provider.prompts[0]
	require.GreaterOrEqual(t, len(prompt), 3)
	assert.Equal(t, constant.ChatMessageRoleSystem, prompt[0].Role)
	assert.Equal(t, "Context: Prefers concise answers", prompt[0].Content)
	assert.Equal(t, constant.SystemPrompt, prompt[1].Content)
}

func TestSendMessageProfilingDisabled(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	_, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	prompt := f.provider.prompts[0]
	assert.Equal(t, constant.SystemPrompt, prompt[0].Content)
	for _, msg := range prompt {
		assert.False(t, strings.HasPrefix(msg.Content, "Context: "))
	}
}

func TestSendMessageAttachmentsExpandedInPromptOnly(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	res, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{
		Message:     "see attached",
		Attachments: []string{"http://files.test/report.pdf", "http://files.test/notes.txt"},
	})
	require.NoError(t, err)

	// The prompt carries the extracted text under the markers.
	prompt := f.provider.prompts[0]
	userTurn := prompt[len(prompt)-1]
	assert.Contains(t, userTurn.Content, constant.AttachmentPdfTextMarker+":\npdf contents")
	assert.Contains(t, userTurn.Content, constant.AttachmentTextMarker+":\nplain contents")

	// The stored record keeps the message verbatim with the URLs alongside.
	messages, err := f.service.GetSessionMessages(ctx, f.userId, res.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "see attached", messages[0].Content)
	assert.Equal(t, []string{"http://files.test/report.pdf", "http://files.test/notes.txt"}, messages[0].Attachments)
}

func TestSendMessageAttachmentFetchFailure(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	_, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{
		Message:     "see attached",
		Attachments: []string{"http://files.test/gone.pdf"},
	})
	require.Error(t, err)

	// No completion was attempted; the user turn is persisted verbatim.
	assert.Empty(t, f.provider.prompts)
	sessions, err := f.store.ChatSessions().FindAllByUserId(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	messages, err := f.store.ChatMessages().FindAllBySessionId(ctx, sessions[0].Id)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "see attached", messages[0].Content)
}

func TestSendMessageCompletionFailureLeavesUserTurn(t *testing.T) {
	f := newChatFixture(t, false)
	f.provider.err = errors.New("upstream down")
	ctx := context.Background()

	_, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "doomed"})
	require.Error(t, err)

	// The orphaned user turn stays visible; nothing is rolled back.
	sessions, err := f.store.ChatSessions().FindAllByUserId(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	messages, err := f.store.ChatMessages().FindAllBySessionId(ctx, sessions[0].Id)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[0].Role)
}

func TestGetUserSessionsOrder(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	first, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "first"})
	require.NoError(t, err)
	second, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "second"})
	require.NoError(t, err)

	sessions, err := f.service.GetUserSessions(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.SessionId, sessions[0].Id)

	// Touching the older session moves it back to the front.
	_, err = f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{
		Message:   "follow-up",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)

	sessions, err = f.service.GetUserSessions(ctx, f.userId)
	require.NoError(t, err)
	assert.Equal(t, first.SessionId, sessions[0].Id)
}

func TestGetSessionMessagesOrderAndOwnership(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	res, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	messages, err := f.service.GetSessionMessages(ctx, f.userId, res.SessionId)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.True(t, !messages[1].Timestamp.Before(messages[0].Timestamp))

	_, err = f.service.GetSessionMessages(ctx, uuid.New(), res.SessionId)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContinueSession(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	res, err := f.service.SendMessage(ctx, f.userId, &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	session, err := f.service.ContinueSession(ctx, f.userId, res.SessionId)
	require.NoError(t, err)
	assert.True(t, session.IsActive)

	_, err = f.service.ContinueSession(ctx, f.userId, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchBestEffort(t *testing.T) {
	f := newChatFixture(t, false)
	ctx := context.Background()

	f.searcher.results = []string{"doc one", "doc two"}
	results := f.service.Search(ctx, "query")
	assert.Equal(t, []string{"doc one", "doc two"}, results)

	f.searcher.err = errors.New("index offline")
	results = f.service.Search(ctx, "query")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchCapsResults(t *testing.T) {
	f := newChatFixture(t, false)

	for i := 0; i < 8; i++ {
		f.searcher.results = append(f.searcher.results, fmt.Sprintf("doc %d", i))
	}
	results := f.service.Search(context.Background(), "query")
	assert.Len(t, results, searchMaxResults)
}
