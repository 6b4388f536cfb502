package main

import "sitecraft_backend/internal/app"

func main() {
	app.Run()
}
