// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"bytes"
	"log/slog"
)

type testLogBuffer struct {
	bytes.Buffer
}

func newTestLogger(buf *testLogBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}
