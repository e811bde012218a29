// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config is the schema and persistence engine behind confkit.
//
// A Schema declares fields with defaults, optional explicit field types and
// hints. Types left out are inferred from the defaults the first time the
// schema is used and then frozen. A Schema used as a field default (or a
// Group built from one) declares a nested group.
//
//	var Walls = config.NewSchema("WallColors").
//		Field("east", fieldtype.RGB{255, 0, 0}, config.Hint("Where the sun rises."))
//
//	var App = config.NewSchema("App").
//		File("assets/config.json").
//		Version(1).
//		Field("age", 3).
//		Field("walls", Walls)
//
// Schema.New builds independent groups (sub configurations). Open returns
// the single process-wide Config for a root schema, loaded from its JSON
// file, falling back to defaults when the file is missing or was written
// for another schema version. Values are addressed with dotted paths
// ("walls.east") and every assignment goes through the field's type.
package config
