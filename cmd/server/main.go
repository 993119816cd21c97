package main

import (
	"log"

	"px-platform/internal/app"
)

func main() {
	server := app.NewServer()
	log.Fatal(server.Start())
}
