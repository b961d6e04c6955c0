package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/api/http/handlers"
	"github.com/spec-kit/agent-console/internal/auth"
	"github.com/spec-kit/agent-console/internal/events"
	"github.com/spec-kit/agent-console/internal/observability"
	"github.com/spec-kit/agent-console/internal/repository/memory"
	"github.com/spec-kit/agent-console/internal/service"
	"github.com/spec-kit/agent-console/internal/session"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, memory.Seed(store, 4))

	logger := zap.NewNop()
	customerRepo := memory.NewCustomerRepository(store)
	productRepo := memory.NewProductRepository(store)
	chatRepo := memory.NewChatRepository(store)
	ticketRepo := memory.NewTicketRepository(store)
	requestRepo := memory.NewRequestRepository(store)
	agentRepo := memory.NewAgentRepository(store)

	sessionStore := session.NewMemoryStore()

	dispatcher := events.NewInMemoryDispatcher()
	service.NewTimelineProjector(ticketRepo, agentRepo, logger).RegisterHandlers(dispatcher)

	tokenManager := auth.NewTokenManager("test-secret", 60)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(nil, "test"),
		Customers:      handlers.NewCustomersHandler(service.NewCustomerService(customerRepo, productRepo)),
		Chat:           handlers.NewChatHandler(service.NewChatService(chatRepo, logger)),
		Products:       handlers.NewProductsHandler(service.NewCustomerService(customerRepo, productRepo)),
		Tickets:        handlers.NewTicketsHandler(service.NewTicketService(ticketRepo, dispatcher, logger)),
		Identity:       handlers.NewIdentityHandler(),
		Queue:          handlers.NewQueueHandler(service.NewQueueService(requestRepo, sessionStore, logger)),
		Sessions:       handlers.NewSessionsHandler(service.NewVerificationService(sessionStore, customerRepo, productRepo, logger)),
		Agents:         handlers.NewAgentsHandler(service.NewAuthService(agentRepo, tokenManager, logger)),
		AuthMiddleware: auth.NewMiddleware(tokenManager, agentRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode(t *testing.T, raw []byte, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, target))
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, raw := doJSON(t, app, http.MethodPost, "/api/agents/login", fiber.Map{
		"email":    "mike.johnson@console.example.com",
		"password": "agent-demo-1",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var body struct {
		Token string `json:"token"`
	}
	decode(t, raw, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestGetCustomers(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/customers", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var customers []map[string]any
	decode(t, raw, &customers)
	assert.Len(t, customers, 10)
	assert.NotContains(t, string(raw), "security_answers")
}

func TestGetCustomerMissingAnswersNull(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/customers/999", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", string(bytes.TrimSpace(raw)))
}

func TestChatRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/customers/1/chat", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var before []map[string]any
	decode(t, raw, &before)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/chat/message", fiber.Map{
		"customer_id": 1,
		"message":     "router rebooted, still offline",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, raw, &created)
	assert.Positive(t, created.ID)

	_, raw = doJSON(t, app, http.MethodGet, "/api/customers/1/chat", nil, "")
	var after []map[string]any
	decode(t, raw, &after)
	assert.Len(t, after, len(before)+1)
}

func TestChatMessageMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/chat/message", fiber.Map{"message": "hi"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProductsByCustomer(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/products/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []map[string]any
	decode(t, raw, &products)
	assert.Len(t, products, 4)
}

func TestCreateTicketMissingFieldsDoesNotInsert(t *testing.T) {
	app := newTestApp(t)

	_, raw := doJSON(t, app, http.MethodGet, "/api/tickets", nil, "")
	var before []map[string]any
	decode(t, raw, &before)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/tickets", fiber.Map{"description": "no subject"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/tickets", fiber.Map{"subject": "no customer"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, raw = doJSON(t, app, http.MethodGet, "/api/tickets", nil, "")
	var after []map[string]any
	decode(t, raw, &after)
	assert.Len(t, after, len(before))
}

func TestCreateTicketRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/tickets", fiber.Map{
		"subject":     "Camera offline",
		"customer_id": 1,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var created struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	decode(t, raw, &created)
	require.Positive(t, created.ID)
	assert.NotEmpty(t, created.Message)

	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/tickets/%d", created.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ticket struct {
		ID       int64  `json:"id"`
		Subject  string `json:"subject"`
		Status   string `json:"status"`
		Priority string `json:"priority"`
		Events   []struct {
			Type string `json:"type"`
		} `json:"events"`
	}
	decode(t, raw, &ticket)
	assert.Equal(t, created.ID, ticket.ID)
	assert.Equal(t, "Camera offline", ticket.Subject)
	assert.Equal(t, "Open", ticket.Status)
	assert.Equal(t, "Medium", ticket.Priority)
	require.Len(t, ticket.Events, 1)
	assert.Equal(t, "created", ticket.Events[0].Type)
}

func TestGetTicketUnknown(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/tickets/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateTicketStatus(t *testing.T) {
	app := newTestApp(t)

	_, raw := doJSON(t, app, http.MethodGet, "/api/tickets/1", nil, "")
	var before struct {
		UpdatedAt string `json:"updated_at"`
	}
	decode(t, raw, &before)

	resp, raw := doJSON(t, app, http.MethodPut, "/api/tickets/1", fiber.Map{"status": "Resolved"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var updated struct {
		Message string `json:"message"`
	}
	decode(t, raw, &updated)
	assert.NotEmpty(t, updated.Message)

	_, raw = doJSON(t, app, http.MethodGet, "/api/tickets/1", nil, "")
	var after struct {
		Status    string `json:"status"`
		UpdatedAt string `json:"updated_at"`
		Events    []struct {
			Type string `json:"type"`
		} `json:"events"`
	}
	decode(t, raw, &after)
	assert.Equal(t, "Resolved", after.Status)
	assert.NotEqual(t, before.UpdatedAt, after.UpdatedAt)
	assert.Equal(t, "statusChange", after.Events[len(after.Events)-1].Type)
}

func TestUpdateTicketUnknown(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/tickets/999", fiber.Map{"status": "Resolved"}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateTicketEmptyPatch(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/tickets/1", fiber.Map{}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTicketEventsFilter(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/tickets/1/events", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var public []map[string]any
	decode(t, raw, &public)
	assert.Len(t, public, 6)

	_, raw = doJSON(t, app, http.MethodGet, "/api/tickets/1/events?include_private=true", nil, "")
	var all []map[string]any
	decode(t, raw, &all)
	assert.Len(t, all, 8)

	_, raw = doJSON(t, app, http.MethodGet, "/api/tickets/1/events?type=note&include_private=true", nil, "")
	var notes []map[string]any
	decode(t, raw, &notes)
	assert.Len(t, notes, 2)
}

func TestAppendTicketNote(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/tickets/1/notes", fiber.Map{
		"content": "customer called back",
		"private": true,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var note struct {
		ID      int64  `json:"id"`
		Type    string `json:"type"`
		Private bool   `json:"private"`
	}
	decode(t, raw, &note)
	assert.Equal(t, int64(9), note.ID, "note id is its sequence position")
	assert.Equal(t, "note", note.Type)
	assert.True(t, note.Private)
}

func TestVerifyIdentityStub(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/verify-identity", fiber.Map{
		"accountNumber": "AC-10293",
		"email":         "john.doe@example.com",
		"pin":           "4821",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok struct {
		Verified bool `json:"verified"`
	}
	decode(t, raw, &ok)
	assert.True(t, ok.Verified)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/verify-identity", fiber.Map{
		"accountNumber": "AC-10293",
		"email":         "john.doe@example.com",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var bad struct {
		Verified bool `json:"verified"`
	}
	decode(t, raw, &bad)
	assert.False(t, bad.Verified)
}

func TestConsoleRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/requests", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/requests", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/agents/login", fiber.Map{
		"email":    "mike.johnson@console.example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestConsoleFlowSelectVerifyClear(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/requests?status=New&sort_by=priority", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var queue []struct {
		ID int64 `json:"id"`
	}
	decode(t, raw, &queue)
	require.NotEmpty(t, queue)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/requests/2/select", fiber.Map{"view_type": "support"}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var selected struct {
		ID       string `json:"id"`
		Verified bool   `json:"verified"`
		Customer struct {
			ID int64 `json:"id"`
		} `json:"customer"`
	}
	decode(t, raw, &selected)
	require.NotEmpty(t, selected.ID)
	assert.False(t, selected.Verified)
	assert.Equal(t, int64(1), selected.Customer.ID)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/sessions/"+selected.ID+"/verify", fiber.Map{
		"method":         "security_question",
		"question_index": 0,
		"answer":         " smith ",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var verdict struct {
		Verified bool `json:"verified"`
	}
	decode(t, raw, &verdict)
	assert.True(t, verdict.Verified)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/sessions/"+selected.ID, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sess struct {
		Verified bool   `json:"verified"`
		Method   string `json:"method"`
	}
	decode(t, raw, &sess)
	assert.True(t, sess.Verified)
	assert.Equal(t, "security_question", sess.Method)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/sessions/"+selected.ID, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/sessions/"+selected.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConsoleSendCodeFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	_, raw := doJSON(t, app, http.MethodPost, "/api/requests/1/select", nil, token)
	var selected struct {
		ID string `json:"id"`
	}
	decode(t, raw, &selected)
	require.NotEmpty(t, selected.ID)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/sessions/"+selected.ID+"/verify", fiber.Map{
		"method": "phone_code",
		"code":   "123456",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var verdict struct {
		Verified bool   `json:"verified"`
		Reason   string `json:"reason"`
	}
	decode(t, raw, &verdict)
	assert.False(t, verdict.Verified, "code before send-code must be rejected")
	assert.NotEmpty(t, verdict.Reason)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/sessions/"+selected.ID+"/send-code", fiber.Map{"method": "phone_code"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/sessions/"+selected.ID+"/verify", fiber.Map{
		"method": "phone_code",
		"code":   "123456",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, raw, &verdict)
	assert.True(t, verdict.Verified)
}

func TestHealthLive(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/health/live", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "ok")
}
