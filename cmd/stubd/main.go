// cmd/stubd/main.go
package main

import (
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/botstub"
)

func main() {
	logger := logrus.New()

	stub, err := botstub.New(botstub.Options{
		AdminUser:   getEnv("STUB_ADMIN_USER", "operator"),
		AdminPass:   getEnv("STUB_ADMIN_PASS", "operator"),
		AutoAdvance: 2 * time.Second,
		Log:         logger,
	})
	if err != nil {
		logger.Fatalf("failed to build stub backend: %v", err)
	}

	addr := ":8000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("stub backend listening on %s", addr)
	if err := http.ListenAndServe(addr, stub.Handler()); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
