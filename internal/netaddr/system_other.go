//go:build !linux

package netaddr

func systemRouteTable(addrs *SystemAddrTable) RouteTable {
	return NewProbeRouteTable(addrs)
}
