package google

import (
	"errors"

	appconfig "caza_backend/internal/config"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrCredentialsMissing = errors.New("google credentials not configured")

// ClientOptions builds the service-account options shared by the Sheets and Drive clients.
// Inline JSON takes precedence over a credentials file.
func ClientOptions(cfg appconfig.Google) ([]option.ClientOption, error) {
	scopes := option.WithScopes(sheets.SpreadsheetsScope, drive.DriveReadonlyScope)
	switch {
	case cfg.CredentialsJSON != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)), scopes}, nil
	case cfg.CredentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile), scopes}, nil
	}
	return nil, ErrCredentialsMissing
}
