package netaddr

import (
	"context"
	"fmt"
	"net"
)

// ProbeTarget - публичный адрес, до которого спрашиваем маршрут. Трафик не отправляется.
const ProbeTarget = "8.8.8.8:80"

// AddrOwner находит интерфейс, которому назначен адрес.
type AddrOwner interface {
	InterfaceByAddr(ctx context.Context, ip string) (string, error)
}

// ProbeRouteTable определяет интерфейс маршрута по умолчанию там, где нет /proc/net/route.
// UDP-сокет без отправки данных заставляет ОС выбрать локальный адрес по таблице маршрутов,
// после чего адрес сопоставляется с интерфейсом.
type ProbeRouteTable struct {
	owner  AddrOwner
	target string
	dialer net.Dialer
}

// NewProbeRouteTable - конструктор для ProbeRouteTable
func NewProbeRouteTable(owner AddrOwner) *ProbeRouteTable {
	return &ProbeRouteTable{owner: owner, target: ProbeTarget}
}

// DefaultInterface возвращает интерфейс, которому ОС назначила локальный адрес для ProbeTarget.
func (t *ProbeRouteTable) DefaultInterface(ctx context.Context) (string, error) {
	ip, err := t.localIP(ctx)
	if err != nil {
		return "", err
	}
	return t.owner.InterfaceByAddr(ctx, ip)
}

func (t *ProbeRouteTable) localIP(ctx context.Context) (string, error) {
	conn, err := t.dialer.DialContext(ctx, "udp4", t.target)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoGateway, err)
	}
	defer conn.Close()

	localAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || localAddr.IP.To4() == nil {
		return "", fmt.Errorf("%w: unexpected local address %v", ErrNoGateway, conn.LocalAddr())
	}
	return localAddr.IP.String(), nil
}
