// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"cadastro_backend/internal/app"
	"cadastro_backend/internal/auth"
	"cadastro_backend/internal/config"
	"cadastro_backend/internal/file"
	"cadastro_backend/internal/jobs"
	"cadastro_backend/internal/platform/database"
	"cadastro_backend/internal/platform/logger"
	"cadastro_backend/internal/shared"
	"cadastro_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Token service
		auth.NewJWTService,
		wire.Bind(new(shared.TokenService), new(*auth.JWTService)),

		// User module
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
		user.NewHandler,

		// Auth module
		auth.NewHandler,

		// File module
		file.NewGORMRepository,
		file.NewService,
		file.NewHandler,

		// Jobs
		jobs.NewFileCleanupJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
