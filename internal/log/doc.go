// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package log is a thin apex/log front end shared by the engine and the
// confkit binary. The level comes from CONFKIT_LOG.
package log
