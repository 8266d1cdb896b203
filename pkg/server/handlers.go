package server

import (
	"Chirp/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Post    *handler.Post
	Comment *handler.Comment
}
