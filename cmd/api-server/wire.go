//go:build wireinject
// +build wireinject

package main

import (
	"SmartNotes/config"
	"SmartNotes/dao"
	"SmartNotes/dao/cache"
	"SmartNotes/handler"
	"SmartNotes/pkg/client"
	"SmartNotes/pkg/database"
	"SmartNotes/pkg/mail"
	"SmartNotes/pkg/server"
	"SmartNotes/process"
	"SmartNotes/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		mail.NewSender,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Version), "*"),
		wire.Struct(new(handler.Reminder), "*"),

		wire.Struct(new(process.ReminderSweep), "*"),
		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
