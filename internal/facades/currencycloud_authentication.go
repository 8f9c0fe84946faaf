package facades

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// Login authenticates with the API and returns a new session.
// Invalid credentials and unreachable endpoints both fail with models.ErrAuthentication.
func (f *CurrencyCloudHTTPFacade) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	params := url.Values{}
	params.Set("login_id", creds.LoginID)
	params.Set("api_key", creds.APIKey)

	var resp models.AuthenticateResponse
	if err := f.call(ctx, http.MethodPost, creds.Environment, authenticatePath, "", params, models.ErrAuthentication, &resp); err != nil {
		return nil, err
	}
	if resp.AuthToken == "" {
		return nil, fmt.Errorf("%w: empty auth token in response", models.ErrAuthentication)
	}

	env := creds.Environment
	if env == "" {
		env = models.EnvironmentDemo
	}

	return &models.Session{
		Token:       resp.AuthToken,
		Environment: env,
		LoginID:     creds.LoginID,
		CreatedAt:   time.Now(),
	}, nil
}

// Logout retires the session token.
func (f *CurrencyCloudHTTPFacade) Logout(ctx context.Context, session *models.Session) error {
	if session == nil {
		return fmt.Errorf("%w: no session", models.ErrService)
	}
	return f.call(ctx, http.MethodPost, session.Environment, closeSessionPath, session.Token, url.Values{}, models.ErrService, nil)
}
