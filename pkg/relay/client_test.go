package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskTextReply(t *testing.T) {
	var gotAuth string
	var gotReq Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]string{"text": "Hello there"})
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.Client())
	res, err := client.Ask(context.Background(), srv.URL, "secret-key", "tok123", "Hi")

	assert.NoError(t, err)
	assert.Equal(t, "Hello there", res.Reply)
	assert.Equal(t, http.StatusOK, res.UpstreamStatus)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "Hi", gotReq.Question)
	assert.Equal(t, "octobot-tok123", gotReq.OverrideConfig.SessionID)
}

func TestAskMessageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "from message field"})
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.Client())
	res, err := client.Ask(context.Background(), srv.URL, "", "tok", "Hi")

	assert.NoError(t, err)
	assert.Equal(t, "from message field", res.Reply)
}

func TestAskEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.Client())
	res, err := client.Ask(context.Background(), srv.URL, "", "tok", "Hi")

	assert.NoError(t, err)
	assert.Equal(t, "No response from agent", res.Reply)
}

func TestAskNoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.Client())
	_, err := client.Ask(context.Background(), srv.URL, "", "tok", "Hi")

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestAskUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.Client())
	_, err := client.Ask(context.Background(), srv.URL, "", "tok", "Hi")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestAskUnreachable(t *testing.T) {
	client := NewClientWithHTTP(&http.Client{})
	_, err := client.Ask(context.Background(), "http://127.0.0.1:1", "", "tok", "Hi")
	assert.Error(t, err)
}
