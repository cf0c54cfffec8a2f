package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// GoogleIdentity is what a verified sign-in yields.
type GoogleIdentity struct {
	GoogleID     string
	Name         string
	Email        string
	Avatar       string
	RefreshToken string
}

// GoogleVerifier turns an authorization code into a verified identity.
// The real implementation talks to Google; tests substitute a stub.
type GoogleVerifier interface {
	AuthURL(state string) string
	Verify(ctx context.Context, code string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	conf *oauth2.Config
}

func NewGoogleVerifier() GoogleVerifier {
	return &googleVerifier{
		conf: &oauth2.Config{
			ClientID:     viper.GetString("google.client_id"),
			ClientSecret: viper.GetString("google.client_secret"),
			RedirectURL:  viper.GetString("google.redirect_url"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (v *googleVerifier) AuthURL(state string) string {
	return v.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Verify exchanges the authorization code and validates the ID token that
// comes back with it, so the profile claims are Google-signed rather than
// client-supplied.
func (v *googleVerifier) Verify(ctx context.Context, code string) (*GoogleIdentity, error) {
	token, err := v.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response has no id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, v.conf.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid Google ID token: %w", err)
	}

	return &GoogleIdentity{
		GoogleID:     payload.Subject,
		Name:         claimString(payload.Claims, "name"),
		Email:        claimString(payload.Claims, "email"),
		Avatar:       claimString(payload.Claims, "picture"),
		RefreshToken: token.RefreshToken,
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
