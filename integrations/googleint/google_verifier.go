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

package googleint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/alehson-uz/alehson/shared"
	"github.com/pkg/errors"
)

// googleVerifier checks a google id token against the tokeninfo endpoint.
// Signature checking is delegated to google, we only verify the audience.
type googleVerifier struct {
	clientID   string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleVerifier(cfg shared.AppConfig) *googleVerifier {
	return &googleVerifier{
		clientID:   cfg.GoogleClientID,
		baseURL:    "https://oauth2.googleapis.com/tokeninfo",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenInfo struct {
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
}

func (g *googleVerifier) Verify(ctx context.Context, idToken string) (shared.GoogleIdentity, error) {
	endpoint := g.baseURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return shared.GoogleIdentity{}, errors.Wrap(err, "could not create tokeninfo request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return shared.GoogleIdentity{}, errors.Wrap(err, "could not reach google tokeninfo endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return shared.GoogleIdentity{}, errors.Errorf("google rejected the id token with status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return shared.GoogleIdentity{}, errors.Wrap(err, "could not decode tokeninfo response")
	}

	if g.clientID != "" && info.Aud != g.clientID {
		return shared.GoogleIdentity{}, errors.New("id token was issued for a different client")
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return shared.GoogleIdentity{}, errors.New("google account has no verified email")
	}

	return shared.GoogleIdentity{Email: info.Email, Name: info.Name}, nil
}
