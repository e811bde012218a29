// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.WarnLevel},
		{"", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestCustomHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	err := h.HandleLog(&log.Entry{
		Level:   log.WarnLevel,
		Message: "field rejected",
		Fields:  log.Fields{"want": "int", "field": "age"},
	})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), " W field rejected field=age want=int\n")
}

func TestCustomHandler_Trace(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	_ = h.HandleLog(&log.Entry{Level: log.DebugLevel, Message: "TRACE: deep"})

	assert.Contains(t, buf.String(), " T deep\n")
}
