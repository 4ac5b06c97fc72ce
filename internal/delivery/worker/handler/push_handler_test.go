package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
)

func newTestPushHandler(t *testing.T, env, provider string) (*PushHandler, *mockSvc.MockFanoutEventHandler) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider, PushAudience: "https://notifier.example.com/push"}}
	cfg.Env.Env = env
	fanout := mockSvc.NewMockFanoutEventHandler(t)

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Fanout: fanout,
	})

	return h, fanout
}

func pushBody(t *testing.T, event *service.FanoutEvent, attributes map[string]string) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/notifier"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func testEvent() *service.FanoutEvent {
	return &service.FanoutEvent{
		ID:       "evt-1",
		Type:     service.FanoutDonationCreated,
		Audience: entity.RoleAudience(entity.RoleOrphanage),
		Title:    "New donation",
		Body:     "Rice (4 servings)",
		Data:     map[string]string{"maps_link": "https://www.google.com/maps?q=1,2"},
	}
}

func TestHandlePush_Delivers(t *testing.T) {
	h, fanout := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
	event := testEvent()

	fanout.EXPECT().HandleFanoutEvent(mock.Anything, mock.MatchedBy(func(e *service.FanoutEvent) bool {
		return e.ID == "evt-1" && e.Audience == event.Audience && e.Data["maps_link"] == event.Data["maps_link"]
	})).Return(3, nil)

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-7"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"storage failure is retried", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"bad audience is dropped", domainerrors.ErrInvalidInput.WithDetails("invalid notification audience"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fanout := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
			fanout.EXPECT().HandleFanoutEvent(mock.Anything, mock.Anything).Return(0, tt.err)

			rec := servePush(h, pushBody(t, testEvent(), nil), nil)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandlePush_MalformedData(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	rec := servePush(h, `{"message":{"data":"%%%not-base64"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	h, fanout := newTestPushHandler(t, constants.EnvProduction, constants.PubSubProviderGoogle)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := servePush(h, pushBody(t, testEvent(), nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, pushBody(t, testEvent(), nil), http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://notifier.example.com/push", gotAudience)

	fanout.EXPECT().HandleFanoutEvent(mock.Anything, mock.Anything).Return(1, nil)
	rec = servePush(h, pushBody(t, testEvent(), nil), http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SkipsVerificationInDevelopment(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderGoogle)
	assert.False(t, h.verifyPushAuth)
}
