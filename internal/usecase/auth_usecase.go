package usecase

import (
	"context"
	"errors"

	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/jwt"
	ucauth "alumni-connect/internal/usecase/auth"
	ucuser "alumni-connect/internal/usecase/user"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.Snapshot, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.Snapshot, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// Auth wraps the core auth service with token issuance and snapshot
// expansion so handlers get the full client-held session object.
type Auth struct {
	authSvc *ucauth.Service
	userSvc *ucuser.Service
	users   user.Repository
	jwt     jwt.Service
}

func NewAuthUsecase(users user.Repository, userSvc *ucuser.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{
		authSvc: ucauth.NewService(users),
		userSvc: userSvc,
		users:   users,
		jwt:     jwtSvc,
	}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.Snapshot, string, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.Snapshot{}, "", "", err
	}
	return u.snapshotWithTokens(ctx, usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.Snapshot, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.Snapshot{}, "", "", err
	}
	return u.snapshotWithTokens(ctx, usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrUnauthorized
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) snapshotWithTokens(ctx context.Context, usr user.User) (user.Snapshot, string, string, error) {
	snap, err := u.userSvc.Snapshot(ctx, usr)
	if err != nil {
		return user.Snapshot{}, "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return user.Snapshot{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return user.Snapshot{}, "", "", ErrInternal
	}

	return snap, access, refresh, nil
}
