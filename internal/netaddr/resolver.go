// Package netaddr определяет LAN-адрес машины: интерфейс маршрута по умолчанию
// и его первый IPv4-адрес.
package netaddr

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
)

// FallbackHost подставляется, когда адрес определить не удалось.
const FallbackHost = "localhost"

var (
	ErrNoGateway   = errors.New("no default IPv4 gateway")
	ErrNoInterface = errors.New("default route interface not found")
	ErrNoAddress   = errors.New("no IPv4 address assigned to interface")
	ErrPermission  = errors.New("permission denied reading network configuration")
)

// RouteTable - таблица шлюзов операционной системы
type RouteTable interface {
	// DefaultInterface возвращает имя интерфейса, через который идет маршрут по умолчанию для IPv4.
	DefaultInterface(ctx context.Context) (string, error)
}

// AddrTable - таблица адресов сетевых интерфейсов
type AddrTable interface {
	// IPv4Addrs возвращает IPv4-адреса интерфейса в порядке назначения.
	IPv4Addrs(ctx context.Context, iface string) ([]string, error)
}

// Resolution - результат определения адреса.
// Либо найденный адрес (Fallback == false), либо FallbackHost с причиной в Cause.
type Resolution struct {
	Host      string
	Interface string
	Fallback  bool
	Cause     error
}

// Resolver - определитель локального адреса
type Resolver struct {
	routes RouteTable
	addrs  AddrTable
}

// NewResolver - конструктор для Resolver
func NewResolver(routes RouteTable, addrs AddrTable) *Resolver {
	return &Resolver{routes: routes, addrs: addrs}
}

// NewSystemResolver возвращает Resolver поверх таблиц текущей ОС.
func NewSystemResolver() *Resolver {
	addrs := NewSystemAddrTable()
	return NewResolver(systemRouteTable(addrs), addrs)
}

// Resolve никогда не возвращает ошибку: любая неудача превращается в FallbackHost.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	iface, err := r.routes.DefaultInterface(ctx)
	if err != nil {
		return fallback("", classify(err, ErrNoGateway))
	}
	if iface == "" {
		return fallback("", ErrNoGateway)
	}

	addrs, err := r.addrs.IPv4Addrs(ctx, iface)
	if err != nil {
		return fallback(iface, classify(err, ErrNoInterface))
	}
	if len(addrs) == 0 {
		return fallback(iface, fmt.Errorf("%w: %s", ErrNoAddress, iface))
	}

	ip := net.ParseIP(addrs[0])
	if ip == nil || ip.To4() == nil {
		return fallback(iface, fmt.Errorf("%w: %s has %q", ErrNoAddress, iface, addrs[0]))
	}

	return Resolution{
		Host:      ip.To4().String(),
		Interface: iface,
	}
}

func fallback(iface string, cause error) Resolution {
	return Resolution{
		Host:      FallbackHost,
		Interface: iface,
		Fallback:  true,
		Cause:     cause,
	}
}

// classify приводит ошибку к одной из известных причин, сохраняя исходную.
func classify(err, def error) error {
	switch {
	case errors.Is(err, ErrNoGateway), errors.Is(err, ErrNoInterface),
		errors.Is(err, ErrNoAddress), errors.Is(err, ErrPermission):
		return err
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermission, err)
	default:
		return fmt.Errorf("%w: %w", def, err)
	}
}
