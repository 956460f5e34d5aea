package identity

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=verifier.go -destination=mock/verifier_mock.go -package=mock

// Verifier authenticates a bearer token and resolves it to an email.
// Provider internals never cross this boundary; callers only see an
// email or an error.
type Verifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier initializes the Firebase Admin SDK from a
// base64-encoded service-account key (the FB_SERVICE_KEY env format).
func NewFirebaseVerifier(ctx context.Context, encodedServiceKey string) (Verifier, error) {
	if encodedServiceKey == "" {
		return nil, fmt.Errorf("firebase service key is required")
	}

	credentials, err := base64.StdEncoding.DecodeString(encodedServiceKey)
	if err != nil {
		return nil, fmt.Errorf("decode firebase service key: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firebase auth client: %w", err)
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("verify ID token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("token has no email claim")
	}

	return email, nil
}
