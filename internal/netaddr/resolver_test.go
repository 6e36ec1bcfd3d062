package netaddr

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoutes struct {
	iface string
	err   error
}

func (s stubRoutes) DefaultInterface(context.Context) (string, error) {
	return s.iface, s.err
}

type stubAddrs struct {
	addrs map[string][]string
	err   error
}

func (s stubAddrs) IPv4Addrs(_ context.Context, iface string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	addrs, ok := s.addrs[iface]
	if !ok {
		return nil, ErrNoInterface
	}
	return addrs, nil
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		routes        stubRoutes
		addrs         stubAddrs
		wantHost      string
		wantFallback  bool
		wantCause     error
		wantInterface string
	}{
		{
			name:          "Default route interface with address",
			routes:        stubRoutes{iface: "wlan0"},
			addrs:         stubAddrs{addrs: map[string][]string{"wlan0": {"192.168.1.42", "10.0.0.7"}}},
			wantHost:      "192.168.1.42",
			wantInterface: "wlan0",
		},
		{
			name:         "No default gateway",
			routes:       stubRoutes{err: ErrNoGateway},
			wantHost:     FallbackHost,
			wantFallback: true,
			wantCause:    ErrNoGateway,
		},
		{
			name:         "Empty gateway table",
			routes:       stubRoutes{},
			wantHost:     FallbackHost,
			wantFallback: true,
			wantCause:    ErrNoGateway,
		},
		{
			name:          "Interface missing from address table",
			routes:        stubRoutes{iface: "eth9"},
			addrs:         stubAddrs{addrs: map[string][]string{}},
			wantHost:      FallbackHost,
			wantFallback:  true,
			wantCause:     ErrNoInterface,
			wantInterface: "eth9",
		},
		{
			name:          "Interface without addresses",
			routes:        stubRoutes{iface: "eth0"},
			addrs:         stubAddrs{addrs: map[string][]string{"eth0": nil}},
			wantHost:      FallbackHost,
			wantFallback:  true,
			wantCause:     ErrNoAddress,
			wantInterface: "eth0",
		},
		{
			name:          "Address is not IPv4",
			routes:        stubRoutes{iface: "eth0"},
			addrs:         stubAddrs{addrs: map[string][]string{"eth0": {"fe80::1"}}},
			wantHost:      FallbackHost,
			wantFallback:  true,
			wantCause:     ErrNoAddress,
			wantInterface: "eth0",
		},
		{
			name:         "Permission denied reading routes",
			routes:       stubRoutes{err: &fs.PathError{Op: "open", Path: ProcRoutePath, Err: fs.ErrPermission}},
			wantHost:     FallbackHost,
			wantFallback: true,
			wantCause:    ErrPermission,
		},
		{
			name:          "Unexpected address table error",
			routes:        stubRoutes{iface: "eth0"},
			addrs:         stubAddrs{err: errors.New("boom")},
			wantHost:      FallbackHost,
			wantFallback:  true,
			wantCause:     ErrNoInterface,
			wantInterface: "eth0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.routes, tt.addrs)

			res := r.Resolve(context.Background())

			assert.Equal(t, tt.wantHost, res.Host)
			assert.Equal(t, tt.wantFallback, res.Fallback)
			assert.Equal(t, tt.wantInterface, res.Interface)
			assert.NotEmpty(t, res.Host)
			if tt.wantCause != nil {
				assert.ErrorIs(t, res.Cause, tt.wantCause)
			} else {
				assert.NoError(t, res.Cause)
			}
		})
	}
}

func TestResolver_ResolveKeepsUnderlyingCause(t *testing.T) {
	underlying := errors.New("netlink socket closed")
	r := NewResolver(stubRoutes{err: underlying}, stubAddrs{})

	res := r.Resolve(context.Background())

	require.True(t, res.Fallback)
	assert.ErrorIs(t, res.Cause, ErrNoGateway)
	assert.ErrorIs(t, res.Cause, underlying)
}

func TestNewSystemResolver(t *testing.T) {
	res := NewSystemResolver().Resolve(context.Background())

	// Результат зависит от машины, но инвариант один
	require.NotEmpty(t, res.Host)
	if res.Fallback {
		assert.Equal(t, FallbackHost, res.Host)
		t.Logf("Fallback: %v", res.Cause)
		return
	}

	ip := net.ParseIP(res.Host)
	require.NotNil(t, ip, "Resolved host should be a valid IP")
	assert.NotNil(t, ip.To4(), "Resolved host should be IPv4")
	t.Logf("Local IP: %s (%s)", res.Host, res.Interface)
}
