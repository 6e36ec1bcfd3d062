package main

import (
	"errors"
	stdlog "log"
)

func main() {
	if err := errors.New("boom"); err != nil {
		stdlog.Fatalf("failed: %v", err) // want `прямой вызов log.Fatalf в функции main запрещен`
	}
	func() {
		stdlog.Fatal("nested") // want `прямой вызов log.Fatal в функции main запрещен`
	}()
	stdlog.Println("ok")
}
