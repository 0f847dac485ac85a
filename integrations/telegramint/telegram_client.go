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

package telegramint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alehson-uz/alehson/shared"
	"github.com/pkg/errors"
)

// telegramClient pushes messages into a staff chat via the bot api. It is
// fire and forget: callers decide whether a delivery failure matters.
type telegramClient struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

func NewTelegramClient(cfg shared.AppConfig) *telegramClient {
	return &telegramClient{
		botToken:   cfg.TelegramBotToken,
		chatID:     cfg.TelegramChatID,
		baseURL:    "https://api.telegram.org",
		httpClient: &http.Client{Timeout: cfg.TelegramTimeout},
	}
}

func (t *telegramClient) enabled() bool {
	return t.botToken != "" && t.chatID != ""
}

func (t *telegramClient) Send(ctx context.Context, text string) error {
	if !t.enabled() {
		return errors.New("telegram integration is not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	})
	if err != nil {
		return errors.Wrap(err, "could not marshal telegram payload")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "could not create telegram request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not reach telegram bot api")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("telegram bot api returned status %d", resp.StatusCode)
	}
	return nil
}
