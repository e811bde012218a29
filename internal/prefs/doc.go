// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package prefs loads the confkit CLI preferences file, a small YAML
// document of flag defaults and display settings. It is unrelated to the
// configuration files confkit edits.
package prefs
