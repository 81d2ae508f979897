package main

import (
	"log"

	"github.com/joho/godotenv"

	"onboardly/cmd"
)

func main() {
	// .env is optional; deployed environments set real env vars.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
