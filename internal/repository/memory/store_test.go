package memory

import (
	"context"
	"testing"
	"time"

	"ai-chat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesSameTimestampOrderedById(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	sessionId := uuid.New()

	// Two turns sharing one timestamp, inserted high id first.
	stamp := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	for _, id := range []uuid.UUID{high, low} {
		require.NoError(t, store.ChatMessages().Create(ctx, &entity.ChatMessage{
			Id:        id,
			SessionId: sessionId,
			Role:      "user",
			Timestamp: stamp,
		}))
	}

	messages, err := store.ChatMessages().FindAllBySessionId(ctx, sessionId)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, low, messages[0].Id)
	assert.Equal(t, high, messages[1].Id)
}

func TestMessagesOrderedByTimestamp(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	sessionId := uuid.New()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 3; i >= 1; i-- {
		require.NoError(t, store.ChatMessages().Create(ctx, &entity.ChatMessage{
			Id:        uuid.New(),
			SessionId: sessionId,
			Role:      "user",
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}))
	}

	messages, err := store.ChatMessages().FindAllBySessionId(ctx, sessionId)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		assert.True(t, messages[i].Timestamp.After(messages[i-1].Timestamp))
	}
}
