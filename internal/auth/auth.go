package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

type serviceAccountKey struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// NewDriveService builds a Drive client from a service-account key file.
// Each sync group carries its own key file, so one service is built per
// group and never cached across runs.
func NewDriveService(ctx context.Context, credentialsFile string) (*drive.Service, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials %s: %w", credentialsFile, err)
	}

	var key serviceAccountKey
	if err := json.Unmarshal(b, &key); err != nil {
		return nil, fmt.Errorf("failed to parse credentials %s: %w", credentialsFile, err)
	}

	if key.Type != "service_account" {
		return nil, fmt.Errorf("unexpected credentials type %q in %s", key.Type, credentialsFile)
	}

	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("credentials %s missing client_email or private_key", credentialsFile)
	}

	creds, err := google.CredentialsFromJSON(ctx, b, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account: %w", err)
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gdrive service: %w", err)
	}

	return svc, nil
}
