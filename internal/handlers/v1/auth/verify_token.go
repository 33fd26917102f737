package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
)

// VerifyTokenResponseBody is the response body for verifying a token.
type VerifyTokenResponseBody struct {
	Success bool      `json:"success" doc:"Always true on success"`
	Valid   bool      `json:"valid" doc:"Whether the presented token is valid"`
	User    TokenUser `json:"user" doc:"Identity embedded in the token"`
}

// VerifyTokenOutput is the Huma output for verifying a token.
type VerifyTokenOutput struct {
	Body VerifyTokenResponseBody
}

// VerifyTokenHandler handles POST /auth/verify-token. The middleware has
// already rejected invalid tokens, so reaching the handler means valid.
type VerifyTokenHandler struct{}

// NewVerifyTokenHandler creates a new VerifyTokenHandler.
func NewVerifyTokenHandler() *VerifyTokenHandler {
	return &VerifyTokenHandler{}
}

// Register registers the verify token endpoint with the Huma API.
func (h *VerifyTokenHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "verify-token",
		Method:      http.MethodPost,
		Path:        "/auth/verify-token",
		Summary:     "Verify token",
		Description: "Confirms the presented bearer token is valid.",
		Tags:        []string{"Auth"},
		Security:    auth.BearerSecurity(),
	}, h.handle)
}

func (h *VerifyTokenHandler) handle(ctx context.Context, _ *struct{}) (*VerifyTokenOutput, error) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid token")
	}

	return &VerifyTokenOutput{Body: VerifyTokenResponseBody{
		Success: true,
		Valid:   true,
		User: TokenUser{
			Name:     claims.Name,
			ConfigID: claims.ConfigID,
		},
	}}, nil
}
