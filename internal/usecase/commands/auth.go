package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/pkg/token"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrVerificationInvalid  = errs.New("verification token invalid or expired")
)

const (
	topicUserRegistered       = "user_registered"
	verificationTokenLifetime = 48 * time.Hour
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	VerifyEmail(ctx context.Context, verificationToken string) error
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	tokens     *token.Generator
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	tokens *token.Generator,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		tokens:     tokens,
		clock:      clk,
	}
}

// Register creates a guest account and queues the verification mail in the
// same transaction, so a crashed registration never leaves an account
// without a pending verification job.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	email, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account := user.NewUser(email, hash, user.RoleGuest)

	verificationToken, err := a.tokens.Generate()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		params := sqlc.CreateUserParams{
			ID:           account.ID(),
			Email:        account.Email().Value(),
			PasswordHash: account.PasswordHash(),
			Role:         account.Role().String(),
		}
		if _, createErr := tx.Users().Create(ctx, tx.DB(), params); createErr != nil {
			return createErr
		}

		expiresAt := a.clock.Now().Add(verificationTokenLifetime)
		if tokenErr := tx.Tokens().Insert(ctx, tx.DB(), verificationToken, account.ID(), expiresAt); tokenErr != nil {
			return tokenErr
		}

		payload, marshalErr := json.Marshal(map[string]any{
			"user_id": account.ID(),
			"email":   account.Email().Value(),
			"token":   verificationToken,
		})
		if marshalErr != nil {
			return marshalErr
		}

		return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topicUserRegistered, payload, a.clock.Now())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return account.ID(), nil
}

func (a *authCommandsImpl) VerifyEmail(ctx context.Context, verificationToken string) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, consumeErr := tx.Tokens().Consume(ctx, tx.DB(), verificationToken)
		if consumeErr != nil {
			return consumeErr
		}
		return tx.Users().MarkEmailVerified(ctx, tx.DB(), userID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVerificationInvalid
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokenPair(userReadModel.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
	})
	if err != nil {
		// Login already succeeded; losing the timestamp is not critical
		slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    userReadModel.ID,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokenPair(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
