//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	commonhttp "stayhub/tests/common/httptest"
	mock_commands "stayhub/tests/mock/commands"
	mock_queries "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *mock_commands.MockAuthCommands
	mockQueries  *mock_queries.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = mock_commands.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = mock_queries.NewMockUserQueries(s.mockCtrl)

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.CookieConfig{SameSite: "Lax"})

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/verify-email", s.handler.VerifyEmail)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.Run("created", func() {
		userID := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(userID, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", gin.H{
			"email":    "guest@example.com",
			"password": "correct-horse",
		}, "")

		s.Equal(http.StatusCreated, w.Code)

		var resp resdto.RegisterResponse
		commonhttp.DecodeJSON(s.T(), w, &resp)
		s.Equal(userID.String(), resp.ID)
	})

	s.Run("email already taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrEmailTaken)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", gin.H{
			"email":    "guest@example.com",
			"password": "correct-horse",
		}, "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("rejects malformed body without reaching the use case", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", gin.H{
			"email": "not-an-email",
		}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestVerifyEmail() {
	s.Run("consumed", func() {
		s.mockCommands.EXPECT().VerifyEmail(gomock.Any(), "tok123").Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/verify-email", gin.H{
			"token": "tok123",
		}, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("invalid token", func() {
		s.mockCommands.EXPECT().VerifyEmail(gomock.Any(), "expired").Return(commands.ErrVerificationInvalid)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/verify-email", gin.H{
			"token": "expired",
		}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("success sets cookies and returns user", func() {
		userID := uuid.New()
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&commands.LoginResult{
			UserID: userID,
			TokenPair: &commands.TokenPair{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			},
		}, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), userID).Return(&queries.AuthorizedUserView{
			ID:       userID,
			Email:    "guest@example.com",
			Role:     "guest",
			IsActive: true,
		}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", gin.H{
			"email":    "guest@example.com",
			"password": "correct-horse",
		}, "")

		s.Equal(http.StatusOK, w.Code)

		var resp resdto.LoginResponse
		commonhttp.DecodeJSON(s.T(), w, &resp)
		s.Equal("access-token", resp.AccessToken)
		s.Equal("guest@example.com", resp.User.Email)

		cookieNames := make([]string, 0, 2)
		for _, c := range w.Result().Cookies() {
			cookieNames = append(cookieNames, c.Name)
		}
		s.Contains(cookieNames, "access_token")
		s.Contains(cookieNames, "refresh_token")
	})

	s.Run("invalid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", gin.H{
			"email":    "guest@example.com",
			"password": "wrong",
		}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrUserInactive)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", gin.H{
			"email":    "guest@example.com",
			"password": "correct-horse",
		}, "")

		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("authenticated", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(&queries.AuthorizedUserView{
			ID:       uuid.New(),
			Email:    "guest@example.com",
			Role:     "guest",
			IsActive: true,
		}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing identity", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("user no longer exists", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, queries.ErrUserNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")

		s.Equal(http.StatusNotFound, w.Code)
	})
}
