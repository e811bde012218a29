// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package fieldpath addresses fields inside nested configuration groups with
// dotted paths such as "colors.walls.east", both in memory (segment by
// segment) and inside persisted JSON documents.
package fieldpath
