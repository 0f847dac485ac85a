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

package imagehostint

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/alehson-uz/alehson/shared"
	"github.com/pkg/errors"
)

// imageHostClient uploads attachment binaries to the external image host and
// hands back the public URL. The host keeps the bytes, we only store the URL.
type imageHostClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewImageHostClient(cfg shared.AppConfig) *imageHostClient {
	return &imageHostClient{
		apiKey:     cfg.ImageHostAPIKey,
		apiURL:     cfg.ImageHostURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (i *imageHostClient) Enabled() bool {
	return i.apiKey != ""
}

type uploadResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (i *imageHostClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if !i.Enabled() {
		return "", errors.New("image host integration is not configured")
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		defer pw.Close()
		if err := writer.WriteField("key", i.apiKey); err != nil {
			pw.CloseWithError(err)
			return
		}
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.apiURL, pr)
	if err != nil {
		return "", errors.Wrap(err, "could not create image host request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "could not reach image host")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("image host returned status %d", resp.StatusCode)
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "could not decode image host response")
	}
	if !body.Success || body.Data.URL == "" {
		return "", errors.New("image host rejected the upload")
	}
	return body.Data.URL, nil
}
