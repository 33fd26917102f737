package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Name              string   `json:"name" required:"true" doc:"Name of the transaction"`
	Amount            string   `json:"amount" required:"true" doc:"Decimal amount, non-negative"`
	NetAmount         string   `json:"netAmount,omitempty" doc:"Signed decimal net amount, defaults to amount"`
	TypeID            string   `json:"typeId" required:"true" doc:"Type UUID"`
	Date              string   `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now"`
	TagIDs            []string `json:"tagIds,omitempty" doc:"Tag UUIDs"`
	FundingSourceID   string   `json:"fundingSourceId,omitempty" doc:"Funding source UUID"`
	WealthComponentID string   `json:"wealthComponentId" required:"true" doc:"Wealth component UUID"`
	Description       string   `json:"description,omitempty" doc:"Free-form description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new ledger transaction with its tag links.",
		Tags:        []string{"Transactions"},
		Security:    auth.BearerSecurity(),
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsNegative() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be non-negative")
	}

	netAmount := amount
	if input.Body.NetAmount != "" {
		netAmount, err = decimal.NewFromString(input.Body.NetAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid netAmount", err)
		}
	}

	typeID, err := uuid.FromString(input.Body.TypeID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid typeId", err)
	}
	wealthComponentID, err := uuid.FromString(input.Body.WealthComponentID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid wealthComponentId", err)
	}

	var fundingSourceID uuid.NullUUID
	if input.Body.FundingSourceID != "" {
		parsed, parseErr := uuid.FromString(input.Body.FundingSourceID)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid fundingSourceId", parseErr)
		}
		fundingSourceID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	tagIDs := make([]uuid.UUID, len(input.Body.TagIDs))
	for i, raw := range input.Body.TagIDs {
		tagIDs[i], err = uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid tagIds", err)
		}
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	} else {
		date = time.Now()
	}

	action := &actions.CreateTransaction{
		TransactionName:   input.Body.Name,
		Amount:            amount,
		NetAmount:         netAmount,
		TypeID:            typeID,
		Date:              date,
		TagIDs:            tagIDs,
		FundingSourceID:   fundingSourceID,
		WealthComponentID: wealthComponentID,
		Description:       input.Body.Description,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		logrus.WithError(err).Error("CreateTransaction.Failed")
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction")
	}

	return &CreateTransactionOutput{Status: http.StatusCreated}, nil
}
