package components

import (
	"interview-scheduler/internal/handler"
	"interview-scheduler/internal/handler/api"
	"interview-scheduler/internal/handler/middleware"
	"interview-scheduler/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewConflictHandler,
		api.NewInterviewHandler,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
