//go:build linux

package netaddr

import "github.com/spf13/afero"

func systemRouteTable(_ *SystemAddrTable) RouteTable {
	return NewProcRouteTable(afero.NewOsFs())
}
