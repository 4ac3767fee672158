//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	MEM float64 // in MB
}

// String formats stats for the status footer
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%% · MEM %.1f MB", s.CPU, s.MEM)
}

// Monitor samples resource usage of the viewer process
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
	Self(ctx context.Context) (Stats, error)
}

type monitor struct{}

// NewMonitor creates a new Monitor instance
func NewMonitor() Monitor {
	return &monitor{}
}

func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	cpuPercent, err := proc.CPUPercentWithContext(ctx)
	if err == nil {
		stats.CPU = cpuPercent
	}

	memInfo, err := proc.MemoryInfoWithContext(ctx)
	if err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}

// Self samples the current process
func (m *monitor) Self(ctx context.Context) (Stats, error) {
	return m.GetStats(ctx, os.Getpid())
}
