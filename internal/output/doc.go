// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders configuration fields and persisted documents for
// the confkit commands: tables, JSON, YAML and notices.
package output
