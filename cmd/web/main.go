package main

import "lciportal_backend/internal/app"

func main() {
	app.Run()
}
