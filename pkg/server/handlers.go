package server

import (
	"SmartNotes/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Category *handler.Category
	Note     *handler.Note
	Version  *handler.Version
	Reminder *handler.Reminder
}
