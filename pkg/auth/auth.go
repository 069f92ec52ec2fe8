package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/server/api/v1/apiv1connect"
)

type UserKey struct{}

var (
	ErrNoCredentials = errors.New("authentication credentials were not provided")
	ErrInvalidToken  = errors.New("invalid token")
	ErrUnknownUser   = errors.New("user from token does not exist")
)

type Manager struct {
	conf   *configs.Config
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo repository.UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// UserFromContext returns the caller resolved by the interceptor, or nil for anonymous callers.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey{}).(*model.User)

	return user
}

// RequireUser returns the caller or an Unauthenticated error.
func RequireUser(ctx context.Context) (*model.User, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrNoCredentials)
	}

	return user, nil
}

// GrpcAuthInterceptor resolves the caller from an optional bearer token and
// enforces the access declared for the called procedure. A request without an
// Authorization header is anonymous; a request with a bad token is rejected.
func (a *Manager) GrpcAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			user, err := a.authenticate(ctx, req.Header())
			if err != nil {
				return nil, err
			}

			if user == nil {
				if apiv1connect.AccessFor(req.Spec().Procedure) == apiv1connect.Authenticated {
					return nil, connect.NewError(connect.CodeUnauthenticated, ErrNoCredentials)
				}

				return next(ctx, req)
			}

			return next(context.WithValue(ctx, UserKey{}, user), req)
		}
	}
}

func (a *Manager) authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil || accessToken == nil {
		return nil, err
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Info("error parsing token", zap.Error(err))

		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("%w: %w", ErrInvalidToken, err))
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid || !a.trusted(claims) {
		a.logger.Info("invalid token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
	}

	email, found := claims["email"].(string)
	if !found {
		a.logger.Info("unable to get email from token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, ErrInvalidToken)
	}

	user, err := a.repo.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, connect.NewError(connect.CodeUnauthenticated, ErrUnknownUser)
		}

		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, errors.New("error authenticating user"))
	}

	return user, nil
}

// trusted checks the optional audience and issuer settings against the claims.
func (a *Manager) trusted(claims jwt.MapClaims) bool {
	if len(a.conf.Auth.Audience) > 0 && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		return false
	}

	if len(a.conf.Auth.Domain) > 0 && !claims.VerifyIssuer("https://"+a.conf.Auth.Domain+"/", true) {
		return false
	}

	return true
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return nil, nil //nolint:nilnil // no header means an anonymous caller
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("authorization format must be Bearer {token}"))
	}

	return &token, nil
}
