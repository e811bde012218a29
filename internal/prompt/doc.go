// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package prompt asks the user for field values, one field at a time. On a
// terminal it runs a Bubble Tea editor; otherwise it reads plain lines.
package prompt
