package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/live"
	apimiddleware "github.com/forcollegesake07/food-bridge/internal/delivery/api/middleware"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/router"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/router/handler"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/geo"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
	mockUC "github.com/forcollegesake07/food-bridge/internal/mocks/usecase"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type apiFixtures struct {
	echo        *echo.Echo
	identity    *mockSvc.MockIdentityProvider
	issuer      *mockSvc.MockTokenIssuer
	gate        *mockUC.MockProfileGateUsecase
	profileUC   *mockUC.MockProfileUsecase
	donationUC  *mockUC.MockDonationUsecase
	matchUC     *mockUC.MockMatchUsecase
	requestUC   *mockUC.MockRequestUsecase
	lifecycleUC *mockUC.MockLifecycleUsecase
	broadcastUC *mockUC.MockBroadcastUsecase
}

func newTestAPI(t *testing.T) *apiFixtures {
	t.Helper()

	cfg := &config.Config{
		TestRoutes: &config.TestRoutesConfig{Enabled: true},
		Metrics:    &config.MetricsConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixtures{
		identity:    mockSvc.NewMockIdentityProvider(t),
		issuer:      mockSvc.NewMockTokenIssuer(t),
		gate:        mockUC.NewMockProfileGateUsecase(t),
		profileUC:   mockUC.NewMockProfileUsecase(t),
		donationUC:  mockUC.NewMockDonationUsecase(t),
		matchUC:     mockUC.NewMockMatchUsecase(t),
		requestUC:   mockUC.NewMockRequestUsecase(t),
		lifecycleUC: mockUC.NewMockLifecycleUsecase(t),
		broadcastUC: mockUC.NewMockBroadcastUsecase(t),
	}

	streamer := live.NewStreamer(cfg, logger)
	f.echo = NewEcho(cfg, logger, router.RouterParams{
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profileUC, Logger: logger}),
		RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{
			DonationUC: f.donationUC, MatchUC: f.matchUC, Streamer: streamer, Logger: logger,
		}),
		OrphanageHandler: handler.NewOrphanageHandler(handler.OrphanageHandlerParams{
			RequestUC: f.requestUC, MatchUC: f.matchUC, LifecycleUC: f.lifecycleUC, Streamer: streamer, Logger: logger,
		}),
		DriverHandler: handler.NewDriverHandler(f.donationUC),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			BroadcastUC: f.broadcastUC, ProfileUC: f.profileUC, Logger: logger,
		}),
		NoticeHandler:  handler.NewNoticeHandler(f.lifecycleUC, logger),
		TestHandler:    handler.NewTestHandler(handler.TestHandlerParams{Issuer: f.issuer}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.identity, f.gate, logger),
		Config:         cfg,
	})

	return f
}

func snapshotFor(id string, role entity.Role, loc *entity.Location) session.Snapshot {
	return session.Snapshot{
		AuthUser: &entity.AuthUser{UID: id, Email: id + "@example.com", Role: role},
		Profile:  &entity.Profile{ID: id, Role: role, Name: "Profile " + id, Location: loc},
		Location: loc,
	}
}

// signIn makes token verify to snap's identity and lets the gate admit it for role.
func (f *apiFixtures) signIn(token string, snap session.Snapshot, role entity.Role) {
	f.identity.EXPECT().VerifyToken(mock.Anything, token).Return(snap.AuthUser, nil)
	f.gate.EXPECT().Resolve(mock.Anything, snap.AuthUser, role, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.AuthUser, _ entity.Role, w *session.Writer) (*usecase.GateResult, error) {
			w.Publish(snap)

			return &usecase.GateResult{State: usecase.GateReady, Snapshot: snap}, nil
		})
}

func (f *apiFixtures) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code     string `json:"code"`
		Message  string `json:"message"`
		Details  any    `json:"details"`
		Redirect string `json:"redirect"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth(t *testing.T) {
	f := newTestAPI(t)

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAuth_MissingAndInvalidToken(t *testing.T) {
	f := newTestAPI(t)

	rec := f.do(http.MethodGet, "/api/v1/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)
	assert.Equal(t, "/login", env.Error.Redirect)

	f.identity.EXPECT().VerifyToken(mock.Anything, "bogus").Return(nil, service.ErrInvalidToken)
	rec = f.do(http.MethodGet, "/api/v1/profile", "bogus", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_GateRejections(t *testing.T) {
	f := newTestAPI(t)
	snap := snapshotFor("o1", entity.RoleOrphanage, nil)

	f.identity.EXPECT().VerifyToken(mock.Anything, "t").Return(snap.AuthUser, nil)
	f.gate.EXPECT().Resolve(mock.Anything, snap.AuthUser, entity.RoleRestaurant, mock.Anything).
		Return(&usecase.GateResult{State: usecase.GateRoleMismatch, Redirect: "/orphanages"}, nil).Once()
	f.gate.EXPECT().Resolve(mock.Anything, snap.AuthUser, entity.RoleDriver, mock.Anything).
		Return(&usecase.GateResult{State: usecase.GateDisabled, Redirect: "/login"}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/restaurant/donations", "t", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "ROLE_MISMATCH", env.Error.Code)
	assert.Equal(t, "/orphanages", env.Error.Redirect)

	rec = f.do(http.MethodGet, "/api/v1/driver/pickups", "t", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_DISABLED", decode(t, rec).Error.Code)
}

func TestProfile_RegisterSkipsGate(t *testing.T) {
	f := newTestAPI(t)
	user := &entity.AuthUser{UID: "new-user", Email: "new@example.com"}

	f.identity.EXPECT().VerifyToken(mock.Anything, "t").Return(user, nil)
	f.profileUC.EXPECT().Register(mock.Anything, user, mock.MatchedBy(func(in *usecase.RegisterProfileInput) bool {
		return in.Name == "Hope House" && in.RequestedRole == entity.RoleOrphanage &&
			in.Location != nil && in.Location.Lat == 25.03
	})).Return(&entity.Profile{ID: "new-user", Name: "Hope House"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/profile", "t",
		`{"name":"Hope House","role":"orphanage","location":{"lat":25.03,"lng":121.56}}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestProfile_ValidationFailure(t *testing.T) {
	f := newTestAPI(t)
	user := &entity.AuthUser{UID: "new-user"}
	f.identity.EXPECT().VerifyToken(mock.Anything, "t").Return(user, nil)

	rec := f.do(http.MethodPost, "/api/v1/profile", "t", `{"name":"","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name is required")
}

func TestProfile_GetReturnsSnapshot(t *testing.T) {
	f := newTestAPI(t)
	snap := snapshotFor("r1", entity.RoleRestaurant, &entity.Location{Lat: 1, Lng: 2})
	f.signIn("t", snap, entity.RoleNone)

	rec := f.do(http.MethodGet, "/api/v1/profile", "t", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got session.Snapshot
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, "r1", got.Profile.ID)
	assert.Equal(t, 1.0, got.Location.Lat)
}

func TestRestaurant_CreateDonation(t *testing.T) {
	f := newTestAPI(t)
	snap := snapshotFor("r1", entity.RoleRestaurant, nil)

	t.Run("numeric servings are passed as text", func(t *testing.T) {
		f.signIn("t1", snap, entity.RoleRestaurant)
		f.donationUC.EXPECT().CreateDonation(mock.Anything, snap, &usecase.CreateDonationInput{FoodName: "Rice", Servings: "4"}).
			Return(&entity.Donation{ID: uuid.New(), FoodName: "Rice", Servings: 4, Status: entity.DonationAvailable}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/restaurant/donations", "t1", `{"food_name":"Rice","servings":4}`)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("invalid servings are a client error", func(t *testing.T) {
		f.signIn("t2", snap, entity.RoleRestaurant)
		f.donationUC.EXPECT().CreateDonation(mock.Anything, snap, &usecase.CreateDonationInput{FoodName: "Rice", Servings: "2.5"}).
			Return(nil, domainerrors.ErrInvalidInput.WithDetails("servings must be a positive whole number")).Once()

		rec := f.do(http.MethodPost, "/api/v1/restaurant/donations", "t2", `{"food_name":"Rice","servings":"2.5"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Equal(t, "servings must be a positive whole number", env.Error.Details)
	})
}

func TestRestaurant_PickupQR(t *testing.T) {
	f := newTestAPI(t)
	snap := snapshotFor("r1", entity.RoleRestaurant, nil)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	f.signIn("t", snap, entity.RoleRestaurant)
	f.donationUC.EXPECT().PickupQR(mock.Anything, snap, id).Return(png, nil)

	rec := f.do(http.MethodGet, "/api/v1/restaurant/donations/"+id.String()+"/qr", "t", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrphanage_Claim(t *testing.T) {
	snap := snapshotFor("o1", entity.RoleOrphanage, nil)

	t.Run("links a request", func(t *testing.T) {
		f := newTestAPI(t)
		donationID, requestID := uuid.New(), uuid.New()
		f.signIn("t", snap, entity.RoleOrphanage)
		f.lifecycleUC.EXPECT().Claim(mock.Anything, snap, donationID, &requestID).
			Return(&usecase.TransitionResult{Donation: &entity.Donation{ID: donationID, Status: entity.DonationClaimed}}, nil)

		rec := f.do(http.MethodPost, "/api/v1/orphanage/donations/"+donationID.String()+"/claim", "t",
			`{"request_id":"`+requestID.String()+`"}`)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("without body", func(t *testing.T) {
		f := newTestAPI(t)
		donationID := uuid.New()
		f.signIn("t", snap, entity.RoleOrphanage)
		f.lifecycleUC.EXPECT().Claim(mock.Anything, snap, donationID, (*uuid.UUID)(nil)).
			Return(nil, domainerrors.ErrInvalidTransition)

		rec := f.do(http.MethodPost, "/api/v1/orphanage/donations/"+donationID.String()+"/claim", "t", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", decode(t, rec).Error.Code)
	})

	t.Run("bad donation id", func(t *testing.T) {
		f := newTestAPI(t)
		f.signIn("t", snap, entity.RoleOrphanage)

		rec := f.do(http.MethodPost, "/api/v1/orphanage/donations/not-a-uuid/claim", "t", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdmin_SetDisabledRequiresFlag(t *testing.T) {
	f := newTestAPI(t)
	admin := snapshotFor("a1", entity.RoleAdmin, nil)
	f.signIn("t", admin, entity.RoleAdmin)

	rec := f.do(http.MethodPut, "/api/v1/admin/profiles/p1/disabled", "t", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)

	f.profileUC.EXPECT().SetDisabled(mock.Anything, admin, "p1", false).Return(nil)
	rec = f.do(http.MethodPut, "/api/v1/admin/profiles/p1/disabled", "t", `{"disabled":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdmin_ListBroadcastsPaging(t *testing.T) {
	f := newTestAPI(t)
	admin := snapshotFor("a1", entity.RoleAdmin, nil)
	f.signIn("t", admin, entity.RoleAdmin)
	f.broadcastUC.EXPECT().ListBroadcasts(mock.Anything, 10, 30).Return([]*entity.Broadcast{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/admin/broadcasts?limit=10&offset=30", "t", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/admin/broadcasts?limit=ten", "t", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotice_ClaimFood(t *testing.T) {
	body := `{"restaurant":{"name":"R","email":"r@example.com"},"orphanage":{"name":"O","email":"o@example.com"},"food":{"name":"Rice","quantity":4}}`
	snap := snapshotFor("o1", entity.RoleOrphanage, nil)

	t.Run("success", func(t *testing.T) {
		f := newTestAPI(t)
		f.signIn("t", snap, entity.RoleNone)
		f.lifecycleUC.EXPECT().SendClaimNotice(mock.Anything, mock.MatchedBy(func(in *usecase.NoticeInput) bool {
			return in.Restaurant.Email == "r@example.com" && in.Food.Quantity == "4"
		})).Return(nil)

		rec := f.do(http.MethodPost, "/api/claim-food", "t", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("missing parties", func(t *testing.T) {
		f := newTestAPI(t)
		f.signIn("t", snap, entity.RoleNone)
		f.lifecycleUC.EXPECT().SendClaimNotice(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidInput)

		rec := f.do(http.MethodPost, "/api/claim-food", "t", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request data"}`, rec.Body.String())
	})

	t.Run("missing email", func(t *testing.T) {
		f := newTestAPI(t)
		f.signIn("t", snap, entity.RoleNone)
		f.lifecycleUC.EXPECT().SendClaimNotice(mock.Anything, mock.Anything).
			Return(domainerrors.ErrInvalidInput.WithDetails("restaurant and orphanage emails are required"))

		rec := f.do(http.MethodPost, "/api/claim-food", "t", `{"restaurant":{"name":"R"},"orphanage":{"name":"O"},"food":{"name":"Rice"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request data"}`, rec.Body.String())
	})

	t.Run("email failure", func(t *testing.T) {
		f := newTestAPI(t)
		f.signIn("t", snap, entity.RoleNone)
		f.lifecycleUC.EXPECT().SendConfirmationNotice(mock.Anything, mock.Anything).
			Return(errors.Wrap(domainerrors.ErrDownstreamDeliveryFailure, "brevo: 502"))

		rec := f.do(http.MethodPost, "/api/confirm-receipt", "t", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Email failed"}`, rec.Body.String())
	})
}

func TestTestRoutes_IssueToken(t *testing.T) {
	f := newTestAPI(t)
	f.issuer.EXPECT().IssueToken("dev-1", "dev@example.com", entity.RoleDriver).Return("signed", nil)

	rec := f.do(http.MethodPost, "/test/token", "", `{"uid":"dev-1","email":"dev@example.com","role":"driver"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"token":"signed"}`, string(decode(t, rec).Data))
}

func TestLive_OrphanageDonations(t *testing.T) {
	f := newTestAPI(t)
	snap := snapshotFor("o1", entity.RoleOrphanage, nil)
	f.signIn("ws-token", snap, entity.RoleOrphanage)

	released := make(chan struct{})
	sub := mockUC.NewMockSubscription(t)
	sub.EXPECT().Unsubscribe().Run(func() { close(released) }).Once()

	f.matchUC.EXPECT().SubscribeAvailable(mock.Anything, (*entity.Location)(nil), mock.Anything, 0.0).
		RunAndReturn(func(_ context.Context, _ *entity.Location, onChange func(usecase.DonationMatches), _ float64) (usecase.Subscription, error) {
			onChange(usecase.DonationMatches{State: geo.MatchStateLocationRequired, Matches: []geo.Match[*entity.Donation]{}})

			return sub, nil
		})

	srv := httptest.NewServer(f.echo)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/orphanage/donations/live?token=ws-token"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var msg struct {
		Type string `json:"type"`
		Data struct {
			State   string `json:"state"`
			Matches []any  `json:"matches"`
		} `json:"data"`
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "snapshot", msg.Type)
	assert.Equal(t, "location_required", msg.Data.State)
	assert.Empty(t, msg.Data.Matches)

	require.NoError(t, conn.WriteJSON(live.Message{Type: live.MessagePing}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "pong", msg.Type)

	require.NoError(t, conn.Close())

	select {
	case <-released:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was not released after the client left")
	}
}
