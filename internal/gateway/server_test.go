package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/neves/zen-bridge/internal/orchestrator"
	"github.com/neves/zen-bridge/internal/providers"
	"github.com/neves/zen-bridge/internal/tools"
)

type echoTool struct {
	tools.BaseTool
}

func (t *echoTool) Execute(ctx context.Context, args map[string]interface{}) tools.Result {
	return tools.OK("rows")
}

func setupGateway(t *testing.T) (*httptest.Server, *providers.MockProvider) {
	t.Helper()

	mock := providers.NewMockProvider()
	orch := orchestrator.New(orchestrator.Config{Provider: mock, Model: "test-model"})
	orch.RegisterTool(&echoTool{
		BaseTool: tools.NewBaseTool("x_query", "query things", []tools.Parameter{
			{Name: "query", Type: tools.TypeString, Description: "SQL", Required: true},
		}),
	})

	srv := httptest.NewServer(New(orch, "", nil).Handler())
	t.Cleanup(srv.Close)
	return srv, mock
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestGatewayChat(t *testing.T) {
	srv, mock := setupGateway(t)
	mock.QueueReply("Hi there")

	conn := dialWS(t, srv)
	if err := conn.WriteJSON(WSRequest{Type: "chat", Input: "hello"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp WSResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}

	if resp.Type != "reply" {
		t.Errorf("Type = %q, want %q", resp.Type, "reply")
	}
	if resp.Content != "Hi there" {
		t.Errorf("Content = %q, want %q", resp.Content, "Hi there")
	}
	if resp.ID == "" {
		t.Error("reply missing id")
	}
}

func TestGatewayToolsFrame(t *testing.T) {
	srv, _ := setupGateway(t)

	conn := dialWS(t, srv)
	if err := conn.WriteJSON(WSRequest{Type: "tools"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp WSResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}

	if resp.Type != "tools" || len(resp.Tools) != 1 {
		t.Fatalf("resp = %+v, want one tool schema", resp)
	}
	if resp.Tools[0].Name != "x_query" {
		t.Errorf("tool name = %q, want %q", resp.Tools[0].Name, "x_query")
	}
}

func TestGatewayUnknownFrame(t *testing.T) {
	srv, _ := setupGateway(t)

	conn := dialWS(t, srv)
	if err := conn.WriteJSON(WSRequest{Type: "bogus"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp WSResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "error" || !strings.Contains(resp.Error, "bogus") {
		t.Errorf("resp = %+v, want error naming the type", resp)
	}
}

func TestGatewayToolsEndpoint(t *testing.T) {
	srv, _ := setupGateway(t)

	resp, err := http.Get(srv.URL + "/tools")
	if err != nil {
		t.Fatalf("GET /tools: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Tools []tools.Schema `json:"tools"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(body.Tools) != 1 {
		t.Fatalf("tools = %d, want 1", len(body.Tools))
	}
	schema := body.Tools[0]
	if schema.Name != "x_query" || schema.InputSchema.Type != "object" {
		t.Errorf("schema = %+v", schema)
	}
	if len(schema.InputSchema.Required) != 1 || schema.InputSchema.Required[0] != "query" {
		t.Errorf("required = %v, want [query]", schema.InputSchema.Required)
	}
}

func TestGatewayHealth(t *testing.T) {
	srv, _ := setupGateway(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
