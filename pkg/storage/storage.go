// Package storage manages the environment config and stored recordings.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/conundrumer/canvas-recorder/pkg/log"

	"gopkg.in/yaml.v3"
)

// Manager storage manager.
type Manager struct {
	storageDir   string
	storageDirFS fs.FS
	disk         *disk
	removeAll    func(string) error

	logger *log.Logger
}

// NewManager returns new manager.
func NewManager(storageDir string, diskSpaceGB float64, logger *log.Logger) *Manager {
	storageDirFS := os.DirFS(storageDir)
	return &Manager{
		storageDir:   storageDir,
		storageDirFS: storageDirFS,
		disk:         newDisk(storageDirFS, diskSpaceGB),
		removeAll:    os.RemoveAll,

		logger: logger,
	}
}

// RecordingsDir returns the path to the recordings directory.
func (s *Manager) RecordingsDir() string {
	return filepath.Join(s.storageDir, "recordings")
}

// DiskUsage returns cached value if within maxAge.
// Will update and return a new value if the cached value is too old.
func (s *Manager) DiskUsage(maxAge time.Duration) (DiskUsage, error) {
	return s.disk.usage(maxAge)
}

// purge deletes the oldest recording while disk usage is above 99%.
func (s *Manager) purge() error {
	for {
		usage, err := s.DiskUsage(10 * time.Minute)
		if err != nil {
			return fmt.Errorf("update disk usage: %w", err)
		}
		if usage.Percent < 99 {
			return nil
		}

		recordings, err := s.ListRecordings()
		if err != nil {
			return fmt.Errorf("list recordings: %w", err)
		}
		if len(recordings) == 0 {
			return nil
		}

		// IDs are time-prefixed, the last entry is the oldest.
		oldest := recordings[len(recordings)-1].ID
		if err := s.DeleteRecording(oldest); err != nil {
			return fmt.Errorf("delete %v: %w", oldest, err)
		}
		s.logger.Info().Src("storage").Msgf("purged recording %v", oldest)

		s.disk.invalidate()
	}
}

// PurgeLoop runs purge on an interval until context is canceled.
func (s *Manager) PurgeLoop(ctx context.Context, duration time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(duration):
			if err := s.purge(); err != nil {
				s.logger.Error().Src("storage").Msgf("could not purge storage: %v", err)
			}
		}
	}
}

// Only used to calculate and cache disk usage.
type disk struct {
	storageDirFS   fs.FS
	diskSpaceBytes int64
	diskUsageBytes func(fs.FS) int64

	cache      DiskUsage
	lastUpdate time.Time
	cacheLock  sync.Mutex

	updateLock sync.Mutex
}

func newDisk(storageDirFS fs.FS, diskSpaceGB float64) *disk {
	return &disk{
		storageDirFS:   storageDirFS,
		diskSpaceBytes: int64(diskSpaceGB * gigabyte),
		diskUsageBytes: diskUsageBytes,
	}
}

func (d *disk) invalidate() {
	d.cacheLock.Lock()
	d.lastUpdate = time.Time{}
	d.cacheLock.Unlock()
}

// usage returns cached value if within maxAge.
// Will update and return a new value if the cached value is too old.
func (d *disk) usage(maxAge time.Duration) (DiskUsage, error) {
	maxTime := time.Now().Add(-maxAge)

	d.cacheLock.Lock()
	if d.lastUpdate.After(maxTime) {
		defer d.cacheLock.Unlock()
		return d.cache, nil
	}
	d.cacheLock.Unlock()

	// Cache is too old, acquire update lock and update it.
	d.updateLock.Lock()
	defer d.updateLock.Unlock()

	// Check if it was updated while we were waiting for the update lock.
	d.cacheLock.Lock()
	if d.lastUpdate.After(maxTime) {
		defer d.cacheLock.Unlock()
		return d.cache, nil
	}
	// Still outdated.
	d.cacheLock.Unlock()

	updatedUsage := d.calculateDiskUsage()

	d.cacheLock.Lock()
	d.cache = updatedUsage
	d.lastUpdate = time.Now()
	d.cacheLock.Unlock()

	return updatedUsage, nil
}

func (d *disk) calculateDiskUsage() DiskUsage {
	used := d.diskUsageBytes(d.storageDirFS)

	percent := 0
	if used != 0 && d.diskSpaceBytes != 0 {
		percent = int((used * 100) / d.diskSpaceBytes)
	}

	return DiskUsage{
		Used:      used,
		Percent:   percent,
		Max:       d.diskSpaceBytes / int64(gigabyte),
		Formatted: formatDiskUsage(float64(used)),
	}
}

// DiskUsage in Bytes.
type DiskUsage struct {
	Used      int64
	Percent   int
	Max       int64
	Formatted string
}

const (
	kilobyte float64 = 1000
	megabyte         = kilobyte * 1000
	gigabyte         = megabyte * 1000
	terabyte         = gigabyte * 1000
)

func formatDiskUsage(used float64) string {
	switch {
	case used < 1000*megabyte:
		return fmt.Sprintf("%.0fMB", used/megabyte)
	case used < 10*gigabyte:
		return fmt.Sprintf("%.2fGB", used/gigabyte)
	case used < 100*gigabyte:
		return fmt.Sprintf("%.1fGB", used/gigabyte)
	case used < 1000*gigabyte:
		return fmt.Sprintf("%.0fGB", used/gigabyte)
	case used < 10*terabyte:
		return fmt.Sprintf("%.2fTB", used/terabyte)
	case used < 100*terabyte:
		return fmt.Sprintf("%.1fTB", used/terabyte)
	default:
		return fmt.Sprintf("%.0fTB", used/terabyte)
	}
}

func diskUsageBytes(fileSystem fs.FS) int64 {
	var used int64
	fs.WalkDir(fileSystem, ".", func(_ string, d fs.DirEntry, err error) error { //nolint:errcheck
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		used += info.Size()

		return nil
	})
	return used
}

// ConfigEnv stores system configuration.
type ConfigEnv struct {
	Port        int     `yaml:"port"`
	HomeDir     string  `yaml:"homeDir"`
	StorageDir  string  `yaml:"storageDir"`
	DiskSpaceGB float64 `yaml:"diskSpace"`

	ConfigDir string
}

// ErrPathNotAbsolute path is not absolute.
var ErrPathNotAbsolute = errors.New("path is not absolute")

// NewConfigEnv return new environment configuration.
func NewConfigEnv(envPath string, envYAML []byte) (*ConfigEnv, error) {
	var env ConfigEnv

	if err := yaml.Unmarshal(envYAML, &env); err != nil {
		return nil, fmt.Errorf("unmarshal env.yaml: %w", err)
	}

	env.ConfigDir = filepath.Dir(envPath)

	if env.Port == 0 {
		env.Port = 8080
	}
	if env.HomeDir == "" {
		env.HomeDir = filepath.Dir(env.ConfigDir)
	}
	if env.StorageDir == "" {
		env.StorageDir = filepath.Join(env.HomeDir, "storage")
	}
	if env.DiskSpaceGB == 0 {
		env.DiskSpaceGB = 5
	}

	if !filepath.IsAbs(env.HomeDir) {
		return nil, fmt.Errorf("homeDir '%v': %w", env.HomeDir, ErrPathNotAbsolute)
	}
	if !filepath.IsAbs(env.StorageDir) {
		return nil, fmt.Errorf("storageDir '%v': %w", env.StorageDir, ErrPathNotAbsolute)
	}

	return &env, nil
}

// RecordingsDir return recordings directory.
func (env ConfigEnv) RecordingsDir() string {
	return filepath.Join(env.StorageDir, "recordings")
}

// PrepareEnvironment prepares directories.
func (env ConfigEnv) PrepareEnvironment() error {
	err := os.MkdirAll(env.RecordingsDir(), 0o700)
	if err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create recordings directory: %v: %w", env.StorageDir, err)
	}
	return nil
}
