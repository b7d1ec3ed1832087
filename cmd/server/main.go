package main

import "quotedesk/backend/internal/app"

func main() {
	app.Run()
}
