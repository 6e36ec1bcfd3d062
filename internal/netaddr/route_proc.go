package netaddr

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// ProcRoutePath - таблица маршрутизации IPv4 ядра Linux
const ProcRoutePath = "/proc/net/route"

// RTF_UP из linux/route.h
const routeFlagUp = 0x1

// ProcRouteTable читает шлюзы из /proc/net/route.
type ProcRouteTable struct {
	fs   afero.Fs
	path string
}

// NewProcRouteTable - конструктор для ProcRouteTable
func NewProcRouteTable(fs afero.Fs) *ProcRouteTable {
	return &ProcRouteTable{fs: fs, path: ProcRoutePath}
}

// DefaultInterface ищет строку с Destination и Mask равными нулю.
// Если маршрутов по умолчанию несколько, выбирается с наименьшей метрикой.
func (t *ProcRouteTable) DefaultInterface(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := t.fs.Open(t.path)
	if err != nil {
		return "", fmt.Errorf("open route table: %w", err)
	}
	defer f.Close()

	var (
		best       string
		bestMetric uint64
	)

	scanner := bufio.NewScanner(f)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}

		route, ok := parseRouteLine(scanner.Text())
		if !ok || !route.isDefault() {
			continue
		}

		if best == "" || route.metric < bestMetric {
			best = route.iface
			bestMetric = route.metric
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read route table: %w", err)
	}

	if best == "" {
		return "", ErrNoGateway
	}
	return best, nil
}

type procRoute struct {
	iface       string
	destination uint64
	flags       uint64
	metric      uint64
	mask        uint64
}

func (r procRoute) isDefault() bool {
	return r.destination == 0 && r.mask == 0 && r.flags&routeFlagUp != 0
}

// Формат строки:
// Iface Destination Gateway Flags RefCnt Use Metric Mask MTU Window IRTT
func parseRouteLine(line string) (procRoute, bool) {
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return procRoute{}, false
	}

	dst, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return procRoute{}, false
	}
	flags, err := strconv.ParseUint(fields[3], 16, 16)
	if err != nil {
		return procRoute{}, false
	}
	metric, err := strconv.ParseUint(fields[6], 10, 32)
	if err != nil {
		return procRoute{}, false
	}
	mask, err := strconv.ParseUint(fields[7], 16, 32)
	if err != nil {
		return procRoute{}, false
	}

	return procRoute{
		iface:       fields[0],
		destination: dst,
		flags:       flags,
		metric:      metric,
		mask:        mask,
	}, true
}
