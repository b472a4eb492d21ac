// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Alert reports a critical error to the error tracker and logs it. If no
// tracker is configured the capture is a no-op and the event id stays nil.
func Alert(message string, err error) {
	eventID := sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	slog.Error("critical error", "msg", message, "err", err, "eventID", eventID)
}

// RecoverAndAlert is meant to be called with a recovered panic value.
func RecoverAndAlert(message string, err error) {
	eventID := sentry.CurrentHub().Recover(err)
	slog.Error("recovered from panic", "msg", message, "err", err, "eventID", eventID)
}
