package auth

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Profile is the API response model for the access configuration. The stored
// secret never appears here.
type Profile struct {
	ConfigID  string `json:"configId" doc:"Configuration UUID"`
	Name      string `json:"name" doc:"Display name of the owner"`
	LastLogin string `json:"lastLogin,omitempty" doc:"RFC3339 time of the last successful login"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

// TokenUser identifies the token holder in verify and refresh responses.
type TokenUser struct {
	Name     string `json:"name" doc:"Display name of the owner"`
	ConfigID string `json:"configId" doc:"Configuration UUID"`
}

func profileFromService(config *service.Config) Profile {
	converted := Profile{
		ConfigID:  config.ID.String(),
		Name:      config.Name,
		CreatedAt: config.CreatedAt.Format(time.RFC3339),
		UpdatedAt: config.UpdatedAt.Format(time.RFC3339),
	}
	if config.LastLogin != nil {
		converted.LastLogin = config.LastLogin.Format(time.RFC3339)
	}
	return converted
}
