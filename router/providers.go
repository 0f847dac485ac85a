package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewStaffRouter),
	fx.Provide(NewAuthRouter),
	fx.Provide(NewContentRouter),
	fx.Provide(NewApplicationRouter),
)
