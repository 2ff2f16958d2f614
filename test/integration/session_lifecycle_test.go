package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
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
	"gorm.io/gorm"
)

// testEnv is the shared scaffolding for the lifecycle tests: a migrated
// database, the full HTTP app, and a seeded admin, bot and tester.
type testEnv struct {
	db     *gorm.DB
	app    *fiber.App
	admin  model.User
	bot    model.Bot
	tester model.ClientTester
}

func newTestEnv(t *testing.T, relayURL string) *testEnv {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	admin := model.User{Email: uuid.NewString() + "@test.local", Name: "Lifecycle Admin", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)

	bot := model.Bot{
		Name:        "Lifecycle Bot",
		ClientName:  "Lifecycle Client",
		RelayApiUrl: relayURL,
		Status:      "live",
		CreatedById: admin.Id,
	}
	require.NoError(t, db.Create(&bot).Error)

	tester := model.ClientTester{
		Name:       "Lifecycle Tester",
		BotId:      bot.Id,
		ShareToken: "it-" + uuid.NewString()[:12],
		IsActive:   true,
	}
	require.NoError(t, db.Create(&tester).Error)

	t.Cleanup(func() {
		db.Where("session_id IN (?)",
			db.Model(&model.TestSession{}).Select("id").Where("client_tester_id = ?", tester.Id),
		).Delete(&model.Message{})
		db.Where("client_tester_id = ?", tester.Id).Delete(&model.TestSession{})
		db.Unscoped().Delete(&tester)
		db.Delete(&bot)
		db.Delete(&admin)
	})

	cfg := config.Load()
	container := bootstrap.NewContainer(db, cfg)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	app := server.New(cfg, container, sysLogger).GetApp()

	return &testEnv{db: db, app: app, admin: admin, bot: bot, tester: tester}
}

// TestSendMessagePersistsUserMessageOnRelayFailure covers the write
// ordering: the tester's message is stored before the agent is called,
// so a dead relay endpoint still leaves the question on record and the
// failure comes back as a synthetic bot message, not an API error.
func TestSendMessagePersistsUserMessageOnRelayFailure(t *testing.T) {
	// An endpoint that is already closed refuses every connection.
	deadAgent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadAgent.Close()

	env := newTestEnv(t, deadAgent.URL)

	boot := getJSON[dto.ChatBootstrapResponse](t, env.app, "/api/chat/v1/"+env.tester.ShareToken+"/session")
	sessionId := boot.Session.Id

	sent := postJSON[dto.SendMessageResponse](t, env.app, "/api/chat/v1/messages", dto.SendMessageRequest{
		SessionId:  sessionId,
		Content:    "does anyone hear me",
		ShareToken: env.tester.ShareToken,
	}, http.StatusCreated)

	assert.True(t, strings.HasPrefix(sent.BotReply, "Error: "), "got reply %q", sent.BotReply)
	assert.NotEqual(t, uuid.Nil, sent.UserMessageId)

	var userMsg model.Message
	require.NoError(t, env.db.First(&userMsg, "id = ?", sent.UserMessageId).Error)
	assert.Equal(t, "does anyone hear me", userMsg.Content)
	assert.Equal(t, sessionId, userMsg.SessionId)

	var botMsg model.Message
	require.NoError(t, env.db.First(&botMsg, "id = ?", sent.BotMessageId).Error)
	assert.True(t, strings.HasPrefix(botMsg.Content, "Error: "))
}

// TestCreateNewSessionMintsFreshSession covers the refresh path: every
// call mints a new session id and leaves the prior session untouched.
func TestCreateNewSessionMintsFreshSession(t *testing.T) {
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "ok"})
	}))
	defer agent.Close()

	env := newTestEnv(t, agent.URL)

	first := getJSON[dto.ChatBootstrapResponse](t, env.app, "/api/chat/v1/"+env.tester.ShareToken+"/session")

	fresh := postJSON[dto.ChatBootstrapResponse](t, env.app,
		"/api/chat/v1/"+env.tester.ShareToken+"/session/new", fiber.Map{}, http.StatusCreated)

	assert.NotEqual(t, first.Session.Id, fresh.Session.Id)
	assert.True(t, fresh.Session.CreatedByRefresh)
	assert.Empty(t, fresh.Messages)

	// The first session survives the refresh with its status intact.
	var prior model.TestSession
	require.NoError(t, env.db.First(&prior, "id = ?", first.Session.Id).Error)
	assert.Equal(t, "live", prior.Status)

	var stored model.TestSession
	require.NoError(t, env.db.First(&stored, "id = ?", fresh.Session.Id).Error)
	assert.True(t, stored.CreatedByRefresh)
}

// TestTesterRecycleBinRoundTrip covers the tester soft-delete cycle:
// deleting moves the tester to the recycle bin and kills the share
// token, restoring brings both back with the token unchanged.
func TestTesterRecycleBinRoundTrip(t *testing.T) {
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "ok"})
	}))
	defer agent.Close()

	env := newTestEnv(t, agent.URL)

	token, err := serverutils.GenerateAdminToken(env.admin.Id, env.admin.Email, 3600)
	require.NoError(t, err)

	// The share token resolves while the tester is active.
	getJSON[dto.ChatBootstrapResponse](t, env.app, "/api/chat/v1/"+env.tester.ShareToken+"/session")

	// Soft delete via the admin surface.
	resp := adminDo(t, env.app, http.MethodDelete, "/api/admin/v1/testers/"+env.tester.Id.String(), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The share token stops resolving.
	req := httptest.NewRequest(http.MethodGet, "/api/chat/v1/"+env.tester.ShareToken+"/session", nil)
	chatResp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, chatResp.StatusCode)

	// Gone from the default listing, present in the recycle bin.
	listed := adminGetJSON[[]dto.TesterResponse](t, env.app,
		"/api/admin/v1/testers?bot_id="+env.bot.Id.String(), token)
	assert.False(t, containsTester(listed, env.tester.Id))

	binned := adminGetJSON[[]dto.TesterResponse](t, env.app, "/api/admin/v1/testers/recycle-bin", token)
	require.True(t, containsTester(binned, env.tester.Id))
	for _, it := range binned {
		if it.Id == env.tester.Id {
			assert.Equal(t, env.tester.ShareToken, it.ShareToken)
			assert.True(t, it.IsDeleted)
		}
	}

	// Restore brings the tester back with the same share token.
	resp = adminDo(t, env.app, http.MethodPost, "/api/admin/v1/testers/"+env.tester.Id.String()+"/restore", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	restored := adminGetJSON[[]dto.TesterResponse](t, env.app,
		"/api/admin/v1/testers?bot_id="+env.bot.Id.String(), token)
	require.True(t, containsTester(restored, env.tester.Id))
	for _, it := range restored {
		if it.Id == env.tester.Id {
			assert.Equal(t, env.tester.ShareToken, it.ShareToken)
			assert.False(t, it.IsDeleted)
		}
	}

	// And the token serves chat again.
	boot := getJSON[dto.ChatBootstrapResponse](t, env.app, "/api/chat/v1/"+env.tester.ShareToken+"/session")
	assert.Equal(t, env.tester.ShareToken, boot.Tester.ShareToken)
}

func containsTester(testers []dto.TesterResponse, id uuid.UUID) bool {
	for _, it := range testers {
		if it.Id == id {
			return true
		}
	}
	return false
}

func adminGetJSON[T any](t *testing.T, app *fiber.App, path, token string) T {
	t.Helper()
	resp := adminDo(t, app, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeEnvelope[T](t, resp)
}

func adminDo(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
