package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/catalog"
	"github.com/edufund/scholarship-finder/dto"
	"github.com/edufund/scholarship-finder/store"
	"github.com/stretchr/testify/assert"
)

func newTestChatService(t *testing.T) *ChatService {
	cat, err := catalog.Load("", "")
	assert.NoError(t, err)
	return NewChatService(cat, store.NewMemoryStore(), "West Bengal", zap.NewNop())
}

func TestChatIntentDispatch(t *testing.T) {
	service := newTestChatService(t)
	ctx := context.Background()

	response, err := service.Respond(ctx, "user1", "Tell me about Kanyashree")
	assert.NoError(t, err)
	assert.Contains(t, response, "Kanyashree Prakalpa")

	response, err = service.Respond(ctx, "user1", "what documents do I need")
	assert.NoError(t, err)
	assert.Contains(t, response, "Document checklist")

	response, err = service.Respond(ctx, "user1", "when is the last date")
	assert.NoError(t, err)
	assert.Contains(t, response, "Important deadlines")
}

func TestChatRegionRuleWins(t *testing.T) {
	service := newTestChatService(t)

	// The query also says "scholarships", but the region rule runs first.
	response, err := service.Respond(context.Background(), "user1", "scholarships in West Bengal")

	assert.NoError(t, err)
	assert.Contains(t, response, "West Bengal Scholarships")
}

func TestChatDefaultResponse(t *testing.T) {
	service := newTestChatService(t)

	response, err := service.Respond(context.Background(), "user1", "hello there")

	assert.NoError(t, err)
	assert.Contains(t, response, "scholarship assistant")
}

func TestChatEmptyQuery(t *testing.T) {
	service := newTestChatService(t)

	_, err := service.Respond(context.Background(), "user1", "   ")

	assert.ErrorIs(t, err, dto.ErrEmptyQuery)
}

func TestChatHistoryRecorded(t *testing.T) {
	service := newTestChatService(t)
	ctx := context.Background()

	// Empty user IDs share the "default" history bucket.
	_, err := service.Respond(ctx, "", "how to apply")
	assert.NoError(t, err)

	history, err := service.History(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"how to apply"}, history)
}
