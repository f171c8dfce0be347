//go:build unit

package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/jwt"
	commonhttp "stayhub/tests/common/httptest"
	mock_commands "stayhub/tests/mock/commands"
	mock_queries "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// staticTokenValidator stands in for JWT validation so route guards can be
// exercised with a chosen identity.
type staticTokenValidator struct {
	userID uuid.UUID
	role   user.Role
}

func (v *staticTokenValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	return v.userID, v.role, nil
}

// RouterTestSuite drives requests through the fully assembled engine, so the
// route guards themselves are under test rather than bare handlers.
type RouterTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller

	mockReservationCommands *mock_commands.MockReservationCommands
	mockReservationQueries  *mock_queries.MockReservationQueries

	actor *staticTokenValidator
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservationCommands = mock_commands.NewMockReservationCommands(s.mockCtrl)
	s.mockReservationQueries = mock_queries.NewMockReservationQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	cfg.CORS = config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}}

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)

	authHandler := api.NewAuthHandler(
		mock_commands.NewMockAuthCommands(s.mockCtrl),
		mock_queries.NewMockUserQueries(s.mockCtrl),
		jwtService,
		cfg.Cookie,
	)
	apartmentHandler := api.NewApartmentHandler(
		mock_commands.NewMockApartmentCommands(s.mockCtrl),
		mock_queries.NewMockApartmentQueries(s.mockCtrl),
	)
	reservationHandler := api.NewReservationHandler(s.mockReservationCommands, s.mockReservationQueries)

	s.actor = &staticTokenValidator{userID: uuid.New(), role: user.RoleGuest}

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, authHandler, apartmentHandler, reservationHandler,
		middleware.NewAuthMiddleware(s.actor))
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RouterTestSuite) TestRejectReservationReachableByOwner() {
	// Rejection authorization is per reservation (owner or manager), so the
	// route must not sit behind the manager-role guard.
	id := uuid.New()
	s.mockReservationCommands.EXPECT().
		RejectReservation(gomock.Any(), id, s.actor.userID, user.RoleGuest, "change of plans").
		Return(nil)

	path := fmt.Sprintf("/api/reservations/%s/reject", id)
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path,
		gin.H{"reason": "change of plans"}, "some-access-token")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *RouterTestSuite) TestManagerListingDeniedToGuests() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations",
		nil, "some-access-token")

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestReservationRoutesRequireAuth() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
		"/api/reservations/"+uuid.New().String()+"/reject", gin.H{"reason": "x"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}
