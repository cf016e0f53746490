package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/catalog"
	"github.com/edufund/scholarship-finder/dto"
	"github.com/edufund/scholarship-finder/service"
	"github.com/edufund/scholarship-finder/store"
	"github.com/stretchr/testify/assert"
)

func newChatRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load("", "")
	assert.NoError(t, err)

	chatService := service.NewChatService(cat, store.NewMemoryStore(), "West Bengal", zap.NewNop())
	chatHandler := NewChatHandler(chatService, zap.NewNop())

	router := gin.New()
	router.POST("/chatbot", chatHandler.Chat)
	return router
}

func TestChat(t *testing.T) {
	router := newChatRouter(t)

	body := `{"query": "how to apply for Kanyashree?", "user_id": "user1"}`
	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "how to apply for Kanyashree?", resp.Query)
	assert.Contains(t, resp.Response, "Kanyashree")
}

func TestChatMissingQuery(t *testing.T) {
	router := newChatRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"user_id": "user1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CHAT_FAILED", resp.Error)
}
