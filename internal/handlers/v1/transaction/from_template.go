package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// FromTemplateBody is the request body for materializing a template.
type FromTemplateBody struct {
	TemplateID string `json:"templateId" required:"true" doc:"Template UUID"`
}

// FromTemplateInput is the Huma input for materializing a template.
type FromTemplateInput struct {
	Body FromTemplateBody
}

// FromTemplateOutput is the Huma output for materializing a template.
type FromTemplateOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// FromTemplateHandler handles POST /v1/transaction/from-template.
type FromTemplateHandler struct {
	Operator actionProcessor
}

// NewFromTemplateHandler creates a new FromTemplateHandler.
func NewFromTemplateHandler(op actionProcessor) *FromTemplateHandler {
	return &FromTemplateHandler{Operator: op}
}

// Register registers the from-template endpoint with the Huma API.
func (h *FromTemplateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction-from-template",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/from-template",
		Summary:     "Create transaction from template",
		Description: "Materializes an active template into a transaction, applying its date offset to today.",
		Tags:        []string{"Transactions"},
		Security:    auth.BearerSecurity(),
	}, h.handle)
}

func (h *FromTemplateHandler) handle(ctx context.Context, input *FromTemplateInput) (*FromTemplateOutput, error) {
	templateID, err := uuid.FromString(input.Body.TemplateID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid templateId", err)
	}

	action := &actions.ApplyTemplate{TemplateID: templateID}
	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrTemplateNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "Template not found")
		}
		logrus.WithError(err).Error("CreateTransactionFromTemplate.Failed")
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction")
	}

	return &FromTemplateOutput{Status: http.StatusCreated}, nil
}
