package common

import (
	"os"
	"testing"

	"github.com/affaneka/portal/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logDir, _ := os.MkdirTemp("", "portal-test-log")
	os.Setenv("PORTAL_LOG_FOLDER", logDir)
	logger.InitLogger(logging.DEBUG)

	code := m.Run()

	logger.CloseLogger()
	os.RemoveAll(logDir)
	os.Exit(code)
}

func TestNewError(t *testing.T) {
	err := NewError("something", "went", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "something went wrong")
}

func TestNewErrorf(t *testing.T) {
	err := NewErrorf("listen on %s failed: %v", ":3000", "address in use")
	assert.EqualError(t, err, "listen on :3000 failed: address in use")
}

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine(nil, nil))

	first := NewError("first")
	second := NewError("second")
	combined := Combine(first, nil, second)
	assert.ErrorIs(t, combined, first)
	assert.ErrorIs(t, combined, second)

	assert.ErrorIs(t, Combine(nil, first), first)
}

func TestRecoverSwallowsPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		defer Recover("test goroutine")
		panic("boom")
	})

	// without a panic in flight there is nothing to report
	assert.Nil(t, Recover(""))
}
