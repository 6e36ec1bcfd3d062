package netaddr

import (
	"context"
	"fmt"
	"net"

	gnet "github.com/shirou/gopsutil/v4/net"
)

// SystemAddrTable читает адреса интерфейсов через gopsutil.
type SystemAddrTable struct {
	list func(ctx context.Context) (gnet.InterfaceStatList, error)
}

// NewSystemAddrTable - конструктор для SystemAddrTable
func NewSystemAddrTable() *SystemAddrTable {
	return &SystemAddrTable{list: gnet.InterfacesWithContext}
}

// IPv4Addrs возвращает IPv4-адреса интерфейса без маски.
func (t *SystemAddrTable) IPv4Addrs(ctx context.Context, iface string) ([]string, error) {
	stats, err := t.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	for _, stat := range stats {
		if stat.Name != iface {
			continue
		}

		var addrs []string
		for _, a := range stat.Addrs {
			if ip := parseIPv4(a.Addr); ip != nil {
				addrs = append(addrs, ip.String())
			}
		}
		if len(addrs) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoAddress, iface)
		}
		return addrs, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoInterface, iface)
}

// InterfaceByAddr находит интерфейс, которому назначен ip.
func (t *SystemAddrTable) InterfaceByAddr(ctx context.Context, ip string) (string, error) {
	target := net.ParseIP(ip)
	if target == nil {
		return "", fmt.Errorf("%w: invalid address %q", ErrNoInterface, ip)
	}

	stats, err := t.list(ctx)
	if err != nil {
		return "", fmt.Errorf("list interfaces: %w", err)
	}

	for _, stat := range stats {
		for _, a := range stat.Addrs {
			if addr := parseIPv4(a.Addr); addr != nil && addr.Equal(target) {
				return stat.Name, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no interface owns %s", ErrNoInterface, ip)
}

// gopsutil отдает адреса в виде CIDR ("192.168.1.5/24")
func parseIPv4(s string) net.IP {
	ip, _, err := net.ParseCIDR(s)
	if err != nil {
		ip = net.ParseIP(s)
	}
	if ip == nil {
		return nil
	}
	return ip.To4()
}
