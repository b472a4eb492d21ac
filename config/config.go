// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package config

// Build metadata, set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = ""
	Branch    = ""
	BuildDate = ""
)
