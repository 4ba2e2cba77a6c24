//go:build wireinject

package service

import (
	"SmartNotes/dao"
	"SmartNotes/pkg/llm"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(VersionService), "*"),
	wire.Bind(new(IVersionService), new(*VersionService)),
	wire.Bind(new(ICategoryLookup), new(*dao.CategoryDAO)),

	wire.Struct(new(ReminderService), "*"),
	wire.Bind(new(IReminderService), new(*ReminderService)),

	llm.NewSummarizer,
	wire.Bind(new(ISummarizer), new(*llm.Summarizer)),
)
