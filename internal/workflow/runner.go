// Package workflow runs the convert funds workflow: authenticate, get a
// detailed quote, create the conversion and log out.
package workflow

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

const logoutTimeout = 10 * time.Second

// Authenticator opens and closes API sessions.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Logout(ctx context.Context, session *models.Session) error
}

// QuoteGetter fetches detailed rates.
type QuoteGetter interface {
	GetQuote(ctx context.Context, session *models.Session, req models.QuoteRequest) (*models.QuoteResult, error)
}

// ConversionCreator books conversions.
type ConversionCreator interface {
	CreateConversion(ctx context.Context, session *models.Session, req models.ConversionRequest) (*models.ConversionResult, error)
}

// Runner executes the workflow steps strictly in order and stops at the first failure.
type Runner struct {
	auth        Authenticator
	quotes      QuoteGetter
	conversions ConversionCreator
	out         io.Writer
}

// NewRunner creates a Runner printing step results to out.
func NewRunner(auth Authenticator, quotes QuoteGetter, conversions ConversionCreator, out io.Writer) *Runner {
	return &Runner{
		auth:        auth,
		quotes:      quotes,
		conversions: conversions,
		out:         out,
	}
}

// Run logs in, gets a quote, creates the conversion and logs out.
// Request values are passed to the API untouched. Once login succeeded, logout
// is attempted on every exit path; after an earlier failure its outcome is only
// logged and the earlier failure is returned.
func (r *Runner) Run(
	ctx context.Context,
	creds models.Credentials,
	quoteReq models.QuoteRequest,
	conversionReq models.ConversionRequest,
) (err error) {
	session, err := r.login(ctx, creds)
	if err != nil {
		return err
	}
	defer func() {
		err = r.logout(ctx, session, err)
	}()

	logger.Log.Infow("requesting quote",
		"buy_currency", quoteReq.BuyCurrency,
		"sell_currency", quoteReq.SellCurrency,
		"amount", quoteReq.Amount.String(),
		"fixed_side", quoteReq.FixedSide,
	)
	quote, err := r.quotes.GetQuote(ctx, session, quoteReq)
	if err != nil {
		logger.Log.Errorw("failed to get quote", "error", err)
		return err
	}
	if err := r.print("getQuote", quote); err != nil {
		return err
	}

	logger.Log.Infow("creating conversion",
		"currency_pair", quoteReq.BuyCurrency+quoteReq.SellCurrency,
		"reason", conversionReq.Reason,
	)
	conversion, err := r.conversions.CreateConversion(ctx, session, conversionReq)
	if err != nil {
		logger.Log.Errorw("failed to create conversion", "error", err)
		return err
	}
	if err := r.print("createConversion", conversion); err != nil {
		return err
	}

	return nil
}

// VerifyLogin opens a session and closes it again without calling anything else.
func (r *Runner) VerifyLogin(ctx context.Context, creds models.Credentials) error {
	session, err := r.login(ctx, creds)
	if err != nil {
		return err
	}
	return r.logout(ctx, session, nil)
}

func (r *Runner) login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	logger.Log.Infow("logging in", "environment", creds.Environment, "login_id", creds.LoginID)

	session, err := r.auth.Login(ctx, creds)
	if err != nil {
		logger.Log.Errorw("login failed", "login_id", creds.LoginID, "error", err)
		return nil, err
	}
	return session, nil
}

func (r *Runner) logout(ctx context.Context, session *models.Session, runErr error) error {
	// The session is retired even when ctx was cancelled mid-run.
	logoutCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
	defer cancel()

	if err := r.auth.Logout(logoutCtx, session); err != nil {
		if runErr != nil {
			logger.Log.Warnw("logout after failed run did not complete", "login_id", session.LoginID, "error", err)
			return runErr
		}
		logger.Log.Errorw("logout failed", "login_id", session.LoginID, "error", err)
		return err
	}

	logger.Log.Infow("logged out", "login_id", session.LoginID)
	if _, err := fmt.Fprint(r.out, "logout\n\n"); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func (r *Runner) print(step string, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s result: %w", step, err)
	}
	_, err = fmt.Fprintf(r.out, "%s: %s\n\n", step, data)
	return err
}
