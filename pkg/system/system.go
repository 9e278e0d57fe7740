// Package system samples host resource usage.
package system

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/conundrumer/canvas-recorder/pkg/log"
	"github.com/conundrumer/canvas-recorder/pkg/storage"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Status stores system status.
type Status struct {
	CPUUsage           int    `json:"cpuUsage"`
	RAMUsage           int    `json:"ramUsage"`
	DiskUsage          int    `json:"diskUsage"`
	DiskUsageFormatted string `json:"diskUsageFormatted"`
}

type (
	cpuFunc  func(context.Context, time.Duration, bool) ([]float64, error)
	ramFunc  func() (*mem.VirtualMemoryStat, error)
	diskFunc func() (storage.DiskUsage, error)
)

// System keeps a periodically updated status snapshot.
type System struct {
	cpu  cpuFunc
	ram  ramFunc
	disk diskFunc

	status       Status
	duration     time.Duration
	timeZonePath string

	logger *log.Logger
	mu     sync.Mutex
}

// New returns a new System.
func New(disk diskFunc, logger *log.Logger) *System {
	return &System{
		cpu:  cpu.PercentWithContext,
		ram:  mem.VirtualMemory,
		disk: disk,

		duration:     10 * time.Second,
		timeZonePath: "/etc/timezone",

		logger: logger,
	}
}

func (s *System) update(ctx context.Context) error {
	// Blocks for the sample duration.
	cpuUsage, err := s.cpu(ctx, s.duration, false)
	if err != nil {
		return fmt.Errorf("get cpu usage: %w", err)
	}
	ramUsage, err := s.ram()
	if err != nil {
		return fmt.Errorf("get ram usage: %w", err)
	}
	diskUsage, err := s.disk()
	if err != nil {
		return fmt.Errorf("get disk usage: %w", err)
	}

	s.mu.Lock()
	s.status = Status{
		CPUUsage:           int(cpuUsage[0]),
		RAMUsage:           int(ramUsage.UsedPercent),
		DiskUsage:          diskUsage.Percent,
		DiskUsageFormatted: diskUsage.Formatted,
	}
	s.mu.Unlock()

	return nil
}

// StatusLoop updates system status until context is canceled.
func (s *System) StatusLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := s.update(ctx); err != nil {
			s.logger.Error().Src("app").
				Msgf("could not update system status: %v", err)
		}
	}
}

// Status returns cpu, ram and disk usage.
func (s *System) Status() Status {
	defer s.mu.Unlock()
	s.mu.Lock()
	return s.status
}

// TimeZone returns the host time zone.
func (s *System) TimeZone() (string, error) {
	data, err := os.ReadFile(s.timeZonePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
