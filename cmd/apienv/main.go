// apienv записывает адрес API бэкенда в .env фронтенда.
//
// Адрес берется с интерфейса маршрута по умолчанию; если его не удалось
// определить, используется localhost. Файл перезаписывается целиком:
//
//	EXPO_PUBLIC_API_BASE_URL="http://<host>:5000/api"
//
// Использование:
//
//	go run ./cmd/apienv
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/25x8/apienv/internal/app"
	"github.com/25x8/apienv/internal/buildinfo"
	"github.com/25x8/apienv/internal/config"
	"github.com/25x8/apienv/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Log.Fatal("Failed to update env file", zap.Error(err))
	}
}

func run(args []string) error {
	// До чтения конфига пишем на уровне info, чтобы ошибки конфига тоже попали в лог
	if err := logger.Initialize("info"); err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load(args, os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		buildinfo.Fprint(os.Stdout)
		return nil
	}

	// Неизвестный уровень не должен мешать записи .env: остаемся на info
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		logger.Log.Warn("Invalid log level, using info",
			zap.String("level", cfg.LogLevel),
			zap.Error(err),
		)
	}

	_, err = app.NewSystem(cfg, os.Stdout).Run(context.Background())
	return err
}
