// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package example declares the schema edited by the confkit binary: a person
// with a name, an age, a documents folder and the colors of the rooms
// around them.
package example
