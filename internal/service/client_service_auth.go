package service

import (
	"context"

	"github.com/ndurmanov/medirates/internal/adapter"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/models"
)

type clientAuthService struct {
	adapter adapter.RemoteGateway
	logger  *logger.Logger
}

func NewClientAuthService(gateway adapter.RemoteGateway, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: gateway, logger: log}
}

func (a *clientAuthService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	session, err := a.adapter.SignInWithPassword(ctx, email, password)
	if err != nil {
		a.logger.Warn().Err(err).Str("email", email).Msg("sign-in failed")
		return models.Session{}, mapAdapterError(err)
	}

	a.logger.Info().Str("email", session.Email).Msg("admin signed in")
	return session, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if err := a.adapter.SignOut(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("sign-out revocation failed")
		return mapAdapterError(err)
	}

	a.logger.Info().Msg("admin signed out")
	return nil
}

func (a *clientAuthService) Session() *models.Session {
	return a.adapter.CurrentSession()
}

func (a *clientAuthService) OnSessionChange(fn func(event models.AuthEvent, session *models.Session)) func() {
	return a.adapter.OnSessionChange(fn)
}
