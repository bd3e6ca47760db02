package main

import (
	"github.com/bornholm/todo/internal/command"
	"github.com/bornholm/todo/internal/command/server"
	"github.com/bornholm/todo/internal/command/user"
)

func main() {
	command.Main(
		"todo",
		"A personal to-do list web application",
		server.Command(),
		user.Command(),
	)
}
