package main

import "flohmarkt_backend/internal/app"

func main() {
	app.Run()
}
