package commands

import (
	"context"
	"log/slog"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/user"
	reqdto "github.com/ferdinandetchu/real-estate-cameroon/internal/handler/dto/request"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/errs"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/jwt"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/password"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailAlreadyInUse    = errs.New("email already in use")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) error
}

type authCommandsImpl struct {
	users      UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Signup registers a viewer account. Operator and admin accounts are only
// created through seeding, never through the public endpoint.
func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u := user.NewUser(credentials.Email(), req.DisplayName, hash, user.RoleViewer, a.clock.Now())
	if err := a.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyInUse
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	slog.Info("user signed up", "user_id", u.ID(), "role", u.Role().String())

	return a.issueTokens(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issueTokens(u)
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

	u, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.generatePair(claims.UserID, role)
}

// RequestPasswordReset always reports success so the endpoint cannot be
// used to probe which emails are registered. Delivery is simulated: the
// reset token only shows up in the server log.
func (a *authCommandsImpl) RequestPasswordReset(ctx context.Context, email string) error {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil
	}

	u, err := a.users.FindByEmail(ctx, addr)
	if err != nil {
		return nil
	}

	slog.Info("password reset requested",
		"user_id", u.ID(),
		"reset_token", uuid.NewString(),
	)
	return nil
}

func (a *authCommandsImpl) issueTokens(u *user.User) (*AuthResult, error) {
	pair, err := a.generatePair(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:      queries.NewAuthorizedUserView(u),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
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
