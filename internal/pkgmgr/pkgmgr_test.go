package pkgmgr

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyde/connector-install/internal/platform"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestForFamily(t *testing.T) {
	m, err := ForFamily(platform.FamilyDebian)
	require.NoError(t, err)
	assert.IsType(t, &AptManager{}, m)
	assert.Equal(t, "/var/lib/dpkg/lock-frontend", m.LockFile())

	m, err = ForFamily(platform.FamilyRHEL)
	require.NoError(t, err)
	assert.IsType(t, &YumManager{}, m)
	assert.Equal(t, "/var/run/yum.pid", m.LockFile())

	_, err = ForFamily(platform.FamilyUnknown)
	assert.Error(t, err)
}

func TestWaitForLockFreeImmediately(t *testing.T) {
	calls := 0
	probe := func() bool {
		calls++
		return false
	}
	assert.True(t, WaitForLock(probe, 300, time.Millisecond, quietLogger()))
	assert.Equal(t, 1, calls)
}

func TestWaitForLockClearsMidway(t *testing.T) {
	calls := 0
	probe := func() bool {
		calls++
		return calls < 4
	}
	assert.True(t, WaitForLock(probe, 300, time.Millisecond, quietLogger()))
	assert.Equal(t, 4, calls)
}

func TestWaitForLockSoftTimeout(t *testing.T) {
	calls := 0
	probe := func() bool {
		calls++
		return true
	}
	// Times out but does not fail hard.
	assert.False(t, WaitForLock(probe, 5, time.Millisecond, quietLogger()))
	assert.Equal(t, 5, calls)
}
