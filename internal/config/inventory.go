package config

import "os"

const (
	firestoreProjectIDEnv = "FIRESTORE_PROJECT_ID"
	firebaseAPIKeyEnv     = "FIREBASE_API_KEY"
	firestoreBaseURLEnv   = "FIRESTORE_BASE_URL"
	identityBaseURLEnv    = "IDENTITY_BASE_URL"
)

// InventoryConfig points at the Firebase project the mobile app writes to.
// The base URLs stay empty in production; tests override them.
type InventoryConfig struct {
	ProjectID        string
	APIKey           string
	FirestoreBaseURL string
	IdentityBaseURL  string
}

func LoadInventoryConfig() *InventoryConfig {
	return &InventoryConfig{
		ProjectID:        os.Getenv(firestoreProjectIDEnv),
		APIKey:           os.Getenv(firebaseAPIKeyEnv),
		FirestoreBaseURL: os.Getenv(firestoreBaseURLEnv),
		IdentityBaseURL:  os.Getenv(identityBaseURLEnv),
	}
}

func (c *InventoryConfig) Validate() error {
	if c == nil || c.ProjectID == "" {
		return ErrProjectIDMissing
	}
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}
	return nil
}
