package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
)

// InitTokenKeys builds the HS256 signer and verifier.
//
// Without JWT_SECRET a random secret is generated on startup and kept only in
// memory, so every token becomes invalid when the service restarts. That is
// fine for dev; production deployments set the secret.
func InitTokenKeys(cfg Config, logger *slog.Logger) (*jwtx.HS256Signer, *jwtx.HS256Verifier, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, nil, err
		}
		secret = generated
		logger.Warn("JWT_SECRET not set, using an ephemeral secret - tokens will not survive restarts")
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_SECRET: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256([]byte(secret), jwtx.VerifyOptions{Issuer: cfg.Issuer})
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_SECRET: %w", err)
	}
	return signer, verifier, nil
}
