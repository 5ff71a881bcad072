package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/footprint-tools/climux/internal/log"
)

const (
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the lock cannot be acquired within the timeout period.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding an exclusive lock file next to the rc
// file at path, so concurrent invocations do not clobber each other's edits.
func WithLock(path string, fn func() error) error {
	lockPath := path + ".lock"

	lockFile, err := acquireLock(lockPath)
	if err != nil {
		return err
	}
	defer releaseLock(lockFile, lockPath)

	return fn()
}

func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)

	for {
		if info, err := os.Stat(lockPath); err == nil {
			if age := time.Since(info.ModTime()); age > staleLockTimeout {
				log.Warn("config: removing stale lock %s (age %s)", lockPath, age.Round(time.Second))
				_ = os.Remove(lockPath)
			}
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			// pid, for debugging stuck locks
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}

		if time.Now().After(deadline) {
			log.Error("config: gave up waiting for %s", lockPath)
			return nil, ErrLockTimeout
		}

		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	if f != nil {
		_ = f.Close()
	}
	_ = os.Remove(lockPath)
}
