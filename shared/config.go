// Copyright (C) 2025 Alehson Team
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
	"os"
	"time"
)

// AppConfig carries every credential and tunable the integration adapters
// need. It is read once at startup and threaded through the constructors
// instead of being consulted ad hoc from the environment.
type AppConfig struct {
	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	GoogleClientID string

	TelegramBotToken string
	TelegramChatID   string
	TelegramTimeout  time.Duration

	ImageHostAPIKey string
	ImageHostURL    string

	UploadDir string
}

func LoadAppConfig() AppConfig {
	cfg := AppConfig{
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		AccessTokenTTL:  60 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,

		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		TelegramTimeout:  5 * time.Second,

		ImageHostAPIKey: os.Getenv("IMAGE_HOST_API_KEY"),
		ImageHostURL:    os.Getenv("IMAGE_HOST_URL"),

		UploadDir: os.Getenv("UPLOAD_DIR"),
	}

	if cfg.ImageHostURL == "" {
		cfg.ImageHostURL = "https://api.imgbb.com/1/upload"
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		if val, err := time.ParseDuration(ttl); err == nil {
			cfg.AccessTokenTTL = val
		}
	}

	if ttl := os.Getenv("REFRESH_TOKEN_TTL"); ttl != "" {
		if val, err := time.ParseDuration(ttl); err == nil {
			cfg.RefreshTokenTTL = val
		}
	}

	return cfg
}
