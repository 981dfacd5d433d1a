// Package main demonstrates usage of the scg-apperror package.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/next-trace/scg-apperror/apperror"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// A storage failure surfaces as a typed chain: the repository reports
	// the missing row, the handler adds request context.
	dbErr := apperror.Database("SELECT", "Connection refused")
	err := apperror.NotFound("User", "123", apperror.WithCause(dbErr)).
		Wrap("Failed to load user profile")

	fmt.Println(err.Chain())
	fmt.Println()
	fmt.Println(err.FullStack())

	// Branch presentation logic on the kind, wherever it sits in the chain.
	switch {
	case apperror.Is(err, apperror.KindNotFound):
		fmt.Println("-> responding 404")
	case apperror.Is(err, apperror.KindValidation):
		fmt.Println("-> responding 422")
	default:
		fmt.Println("-> responding 500")
	}

	// The JSON shape feeds structured logs directly.
	logger.Error().Object("error", jsonView{err.ToJSON()}).Msg("request failed")

	// Failure boundaries produce Results instead of panics.
	res := apperror.WrapErr(
		apperror.TryCatch(loadUser),
		"handler: GET /users/123",
	)

	res.Match(
		func(u string) (string, error) {
			logger.Info().Str("user", u).Msg("loaded")
			return u, nil
		},
		func(err error) (string, error) {
			logger.Error().Str("chain", apperror.FromUnknown(err).Chain()).Msg("load failed")
			return "", err
		},
	)
}

func loadUser() (string, error) {
	return "", apperror.Timeout("fetch user", 250*time.Millisecond)
}

// jsonView adapts the recursive error record to zerolog's object encoder.
type jsonView struct{ *apperror.JSONError }

func (v jsonView) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", v.Kind).
		Str("displayName", v.DisplayName).
		Str("message", v.Message)

	if v.CapturedTrace != "" {
		e.Str("capturedTrace", v.CapturedTrace)
	}

	if v.Cause != nil {
		e.Object("cause", jsonView{v.Cause})
	}
}
