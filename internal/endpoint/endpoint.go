// Package endpoint строит базовый URL API из найденного адреса.
package endpoint

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
)

const (
	Scheme      = "http"
	DefaultPort = 5000
	APIPath     = "/api"
)

var (
	ErrEmptyHost   = errors.New("host must not be empty")
	ErrInvalidPort = errors.New("port out of range")
)

// Endpoint - адрес API для фронтенда
type Endpoint struct {
	Host string
	Port int
}

// New проверяет хост и порт.
func New(host string, port int) (Endpoint, error) {
	if host == "" {
		return Endpoint{}, ErrEmptyHost
	}
	if port < 1 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	return Endpoint{Host: host, Port: port}, nil
}

// URL возвращает http://<host>:<port>/api
func (e Endpoint) URL() string {
	u := url.URL{
		Scheme: Scheme,
		Host:   net.JoinHostPort(e.Host, strconv.Itoa(e.Port)),
		Path:   APIPath,
	}
	return u.String()
}

func (e Endpoint) String() string {
	return e.URL()
}
