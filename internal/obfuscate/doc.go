// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package obfuscate scrambles persisted configuration bytes with a repeating
// XOR key. It hides values from a casual glance at the file and nothing more:
// it is not encryption and must not be used to protect secrets.
package obfuscate
