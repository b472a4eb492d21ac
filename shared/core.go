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

package shared

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

// Server is the group all api v1 routes get mounted on.
type Server = *echo.Group

type MiddlewareFunc = echo.MiddlewareFunc

type Context = echo.Context

type DB = *gorm.DB

// V is the process wide validator instance. Struct validation tags are
// compiled once, so sharing a single instance is the cheap way to do it.
var V = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads the .env file if one exists. Missing files are fine,
// real environments provide variables directly.
func LoadConfig() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// InitLogger sets up the process wide logger. It uses tint to provide a
// colorful human readable output in local development and a plain text
// handler everywhere else.
func InitLogger() {
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	if os.Getenv("LOG_FORMAT") == "text" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: lvl,
		})))
		return
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		AddSource:  false,
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})))
}

// SanitizeParam strips characters which would allow log forging or path
// traversal from a user provided path parameter.
func SanitizeParam(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "/", "")
	s = strings.ReplaceAll(s, "..", "")
	return s
}
