// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_NewLogger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		logger := NewLogger("DEBUG", "testModule")
		assert.NotNil(t, logger)
		assert.True(t, logger.IsEnabledFor(logging.DEBUG))
	})

	t.Run("invalid log level", func(t *testing.T) {
		logger := NewLogger("INVALID", "testInvalid")
		assert.NotNil(t, logger)
		assert.True(t, logger.IsEnabledFor(logging.INFO))
	})
}

func TestLogger_WritesMessages(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "notice", "testWriter")
	log.Info("hidden info")
	log.Notice("sampled 10 points")
	log.Debug("hidden")

	assert.Contains(t, buf.String(), "sampled 10 points")
	assert.Contains(t, buf.String(), "testWriter")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "loud", "testFallback")
	log.Info("shown")
	log.Debug("hidden")

	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}
