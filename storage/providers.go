// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package storage

import (
	"github.com/auditforge/auditforge/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewGCSStorage, fx.As(new(shared.ObjectStorage)))),
)
