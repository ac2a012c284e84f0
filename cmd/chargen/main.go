package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	Execute()
}
