// Package app связывает определение адреса и запись .env в один запуск.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/25x8/apienv/internal/config"
	"github.com/25x8/apienv/internal/endpoint"
	"github.com/25x8/apienv/internal/envfile"
	"github.com/25x8/apienv/internal/logger"
	"github.com/25x8/apienv/internal/netaddr"
)

// HostResolver определяет хост для URL
type HostResolver interface {
	Resolve(ctx context.Context) netaddr.Resolution
}

// EnvWriter записывает значение в env-файл
type EnvWriter interface {
	Write(path, value string) error
	Current(path string) (string, bool, error)
}

// App - один запуск: определение адреса и перезапись env-файла
type App struct {
	cfg      *config.Config
	resolver HostResolver
	writer   EnvWriter
	out      io.Writer
}

// New - конструктор для App
func New(cfg *config.Config, resolver HostResolver, writer EnvWriter, out io.Writer) *App {
	return &App{
		cfg:      cfg,
		resolver: resolver,
		writer:   writer,
		out:      out,
	}
}

// NewSystem собирает App поверх сетевых таблиц ОС и настоящей файловой системы.
func NewSystem(cfg *config.Config, out io.Writer) *App {
	return New(cfg, netaddr.NewSystemResolver(), envfile.NewWriter(afero.NewOsFs(), cfg.EnvKey), out)
}

// Run определяет адрес, перезаписывает env-файл и печатает подтверждение.
// Возвращает записанный URL. Ошибка бывает только при записи файла.
func (a *App) Run(ctx context.Context) (string, error) {
	res := a.resolver.Resolve(ctx)
	if res.Fallback {
		logger.Log.Warn("Could not determine LAN address, using fallback",
			zap.String("host", res.Host),
			zap.String("interface", res.Interface),
			zap.NamedError("cause", res.Cause),
		)
	} else {
		logger.Log.Debug("Resolved LAN address",
			zap.String("host", res.Host),
			zap.String("interface", res.Interface),
		)
	}

	ep, err := endpoint.New(res.Host, a.cfg.Port)
	if err != nil {
		return "", err
	}
	url := ep.URL()

	// Прежнее значение нужно только для лога
	if prev, ok, err := a.writer.Current(a.cfg.EnvFile); err != nil {
		logger.Log.Debug("Could not read existing env file", zap.String("path", a.cfg.EnvFile), zap.Error(err))
	} else if ok && prev != url {
		logger.Log.Info("Replacing API URL", zap.String("previous", prev), zap.String("url", url))
	}

	if err := a.writer.Write(a.cfg.EnvFile, url); err != nil {
		return "", fmt.Errorf("update env file: %w", err)
	}

	logger.Log.Info("Env file updated", zap.String("path", a.cfg.EnvFile), zap.String("url", url))
	// color сам отключает цвет, если stdout не терминал
	_, _ = color.New(color.FgGreen).Fprintf(a.out, "✅ API URL updated in %s: %s\n", a.cfg.EnvFile, url)

	return url, nil
}
