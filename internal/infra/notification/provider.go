package notification

import (
	"context"
	"log/slog"

	"circlecheck/config"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the push gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway creates the push gateway selected by push.provider
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Push
	if cfg == nil {
		return nil, errors.New("push gateway is not configured")
	}

	switch cfg.Provider {
	case constants.PushProviderExpo:
		params.Logger.Info("Using Expo push gateway", slog.String("endpoint", cfg.Endpoint))

		return NewExpoGateway(cfg, nil, params.Logger), nil

	case constants.PushProviderFirebase:
		if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials are required for firebase provider")
		}
		params.Logger.Info("Using Firebase push gateway",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFirebaseGateway(params.Ctx, params.Config.Firebase.CredentialsPath, params.Logger)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
