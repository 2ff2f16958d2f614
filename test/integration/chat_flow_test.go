package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"octobot-be/internal/bootstrap"
	"octobot-be/internal/config"
	"octobot-be/internal/dto"
	"octobot-be/internal/model"
	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/server"
	"octobot-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChatFlow drives the public chat surface end to end: share-token
// bootstrap, message send through a stubbed agent, edit, feedback, note
// and review. Requires a migrated database.
func TestChatFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	// Stub agent endpoint the bot relays to.
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "stubbed agent reply"})
	}))
	defer agent.Close()

	// Seed a bot and tester directly.
	admin := model.User{Email: uuid.NewString() + "@test.local", Name: "Flow Admin", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)

	bot := model.Bot{
		Name:        "Flow Bot",
		ClientName:  "Flow Client",
		RelayApiUrl: agent.URL,
		Status:      "live",
		CreatedById: admin.Id,
	}
	require.NoError(t, db.Create(&bot).Error)

	shareToken := "it-" + uuid.NewString()[:12]
	tester := model.ClientTester{
		Name:       "Flow Tester",
		BotId:      bot.Id,
		ShareToken: shareToken,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&tester).Error)

	t.Cleanup(func() {
		db.Where("client_tester_id = ?", tester.Id).Delete(&model.TestSession{})
		db.Unscoped().Delete(&tester)
		db.Delete(&bot)
		db.Delete(&admin)
	})

	cfg := config.Load()
	container := bootstrap.NewContainer(db, cfg)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	app := server.New(cfg, container, sysLogger).GetApp()

	// 1. Bootstrap by share token mints a live session.
	boot := getJSON[dto.ChatBootstrapResponse](t, app, "/api/chat/v1/"+shareToken+"/session")
	assert.Equal(t, "live", string(boot.Session.Status))
	assert.Equal(t, "Flow Bot", boot.Bot.Name)
	assert.Empty(t, boot.Messages)
	sessionId := boot.Session.Id

	// 2. Bootstrap again reuses the same session.
	again := getJSON[dto.ChatBootstrapResponse](t, app, "/api/chat/v1/"+shareToken+"/session")
	assert.Equal(t, sessionId, again.Session.Id)

	// 3. Send a message; the stubbed agent answers.
	sent := postJSON[dto.SendMessageResponse](t, app, "/api/chat/v1/messages", dto.SendMessageRequest{
		SessionId:  sessionId,
		Content:    "hello agent",
		ShareToken: shareToken,
	}, http.StatusCreated)
	assert.Equal(t, "stubbed agent reply", sent.BotReply)
	assert.NotEqual(t, uuid.Nil, sent.UserMessageId)
	assert.NotEqual(t, uuid.Nil, sent.BotMessageId)

	// 4. Edit the bot reply with an ideal answer.
	postBody(t, app, http.MethodPut, "/api/chat/v1/messages", dto.EditMessageRequest{
		MessageId:     sent.BotMessageId,
		EditedContent: "a better answer",
		ShareToken:    shareToken,
	}, http.StatusOK)

	// 5. Leave feedback on the bot reply.
	postBody(t, app, http.MethodPost, "/api/chat/v1/messages/feedback", dto.MessageFeedbackRequest{
		MessageId:    sent.BotMessageId,
		SessionId:    sessionId,
		FeedbackType: "dislike",
		ShareToken:   shareToken,
	}, http.StatusCreated)

	// 6. Save a session note.
	postBody(t, app, http.MethodPost, "/api/chat/v1/notes", dto.SaveSessionNoteRequest{
		SessionId:  sessionId,
		Content:    "flow note",
		ShareToken: shareToken,
	}, http.StatusOK)

	// 7. Submit a review; the session flips to completed.
	comment := "solid"
	postBody(t, app, http.MethodPost, "/api/chat/v1/reviews", dto.SubmitReviewRequest{
		SessionId:  sessionId,
		Rating:     5,
		Comment:    &comment,
		ShareToken: shareToken,
	}, http.StatusOK)

	var stored model.TestSession
	require.NoError(t, db.First(&stored, "id = ?", sessionId).Error)
	assert.Equal(t, "completed", stored.Status)
	assert.True(t, stored.ReviewSubmitted)

	// 8. Out-of-range rating is rejected before any mutation.
	postBody(t, app, http.MethodPost, "/api/chat/v1/reviews", dto.SubmitReviewRequest{
		SessionId:  sessionId,
		Rating:     6,
		ShareToken: shareToken,
	}, http.StatusBadRequest)

	// 9. Unknown share token is a 404.
	req := httptest.NewRequest(http.MethodGet, "/api/chat/v1/no-such-token/session", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func getJSON[T any](t *testing.T, app *fiber.App, path string) T {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeEnvelope[T](t, resp)
}

func postJSON[T any](t *testing.T, app *fiber.App, path string, body any, wantStatus int) T {
	t.Helper()
	resp := doBody(t, app, http.MethodPost, path, body)
	require.Equal(t, wantStatus, resp.StatusCode)
	return decodeEnvelope[T](t, resp)
}

func postBody(t *testing.T, app *fiber.App, method, path string, body any, wantStatus int) {
	t.Helper()
	resp := doBody(t, app, method, path, body)
	assert.Equal(t, wantStatus, resp.StatusCode)
}

func doBody(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope serverutils.BaseResponse[T]
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope.Data
}
