package main

import (
	"errors"
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Println("error:", err)
		return
	}
}

func run() error {
	return errors.New("boom")
}
