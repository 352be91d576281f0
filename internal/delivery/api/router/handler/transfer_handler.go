package handler

import (
	"net/http"
	"time"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Layouts accepted for period bounds, tried in order.
var periodLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Ledger amounts are NUMERIC(20,2).
const amountScale = 2

var amountLimit = decimal.New(1, 20-amountScale)

type initializeTransferRequest struct {
	// UserID selects the payer; it defaults to the authenticated user.
	UserID    string          `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" validate:"required"`
	Narration *string         `json:"narration"`
}

type initializeTransferData struct {
	TransactionID uuid.UUID `json:"transactionId"`
	Reference     string    `json:"reference"`
}

type initializeTransferResponse struct {
	Status      bool                   `json:"status"`
	Message     string                 `json:"message"`
	PaymentInfo map[string]any         `json:"paymentInfo"`
	Data        initializeTransferData `json:"data"`
}

// transactionView is the wire form of a ledger row; times are epoch milliseconds.
type transactionView struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"userId"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Status             string          `json:"status"`
	Reference          string          `json:"reference"`
	Narration          *string         `json:"narration"`
	InitiationDateTime int64           `json:"initiationDateTime"`
	CompletionDateTime *int64          `json:"completionDateTime"`
}

func toTransactionViews(txs []*entity.Transaction) []transactionView {
	views := make([]transactionView, 0, len(txs))
	for _, tx := range txs {
		view := transactionView{
			ID:                 tx.ID,
			UserID:             tx.UserID,
			Amount:             tx.Amount,
			Currency:           tx.Currency,
			Status:             string(tx.Status),
			Reference:          tx.Reference,
			Narration:          tx.Narration,
			InitiationDateTime: tx.InitiatedAt.UnixMilli(),
		}
		if tx.CompletedAt != nil {
			completed := tx.CompletedAt.UnixMilli()
			view.CompletionDateTime = &completed
		}
		views = append(views, view)
	}

	return views
}

// TransferHandler serves transfer initiation and ledger queries.
type TransferHandler struct {
	transfers usecase.TransferUsecase
	ledger    usecase.LedgerUsecase
}

// NewTransferHandler is the constructor for TransferHandler, injected by Fx.
func NewTransferHandler(transfers usecase.TransferUsecase, ledger usecase.LedgerUsecase) *TransferHandler {
	return &TransferHandler{
		transfers: transfers,
		ledger:    ledger,
	}
}

// Initialize handles POST /transfers/initialize.
func (h *TransferHandler) Initialize(c echo.Context) error {
	payer, err := currentUser(c)
	if err != nil {
		return err
	}

	var req initializeTransferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := checkAmount(req.Amount); err != nil {
		return err
	}
	if req.UserID != "" {
		if payer, err = parseUserID(req.UserID); err != nil {
			return err
		}
	}

	result, err := h.transfers.Initialize(c.Request().Context(), &usecase.InitializeTransferInput{
		UserID:    payer,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Narration: req.Narration,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, initializeTransferResponse{
		Status:      true,
		Message:     "Transaction initiated successfully. Make payment into this account:",
		PaymentInfo: result.PaymentInfo,
		Data: initializeTransferData{
			TransactionID: result.TransactionID,
			Reference:     result.Reference,
		},
	})
}

// ListByUser handles GET /transfers/:userId.
func (h *TransferHandler) ListByUser(c echo.Context) error {
	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		return err
	}

	txs := h.ledger.GetTransactionsByUser(c.Request().Context(), userID)

	return c.JSON(http.StatusOK, toTransactionViews(txs))
}

// ListByPeriod handles GET /transfers/period?startDate=&endDate=[&userId=].
func (h *TransferHandler) ListByPeriod(c echo.Context) error {
	start, ok := parsePeriodBound(c.QueryParam("startDate"))
	if !ok {
		return domainerrors.ErrInvalidPeriod
	}
	end, ok := parsePeriodBound(c.QueryParam("endDate"))
	if !ok {
		return domainerrors.ErrInvalidPeriod
	}

	query := &usecase.PeriodQuery{Start: start, End: end}
	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := parseUserID(raw)
		if err != nil {
			return err
		}
		query.UserID = &userID
	}

	txs := h.ledger.GetTransactionsByTime(c.Request().Context(), query)

	return c.JSON(http.StatusOK, toTransactionViews(txs))
}

// checkAmount rejects amounts the ledger column would round or overflow.
func checkAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("amount: Must be greater than zero")
	case amount.Exponent() < -amountScale && !amount.Equal(amount.Truncate(amountScale)):
		return domainerrors.ErrValidationFailed.WithDetails("amount: At most 2 decimal places")
	case amount.GreaterThanOrEqual(amountLimit):
		return domainerrors.ErrValidationFailed.WithDetails("amount: Too large")
	}

	return nil
}

// parseUserID accepts any case, as uuid.Parse does, for both body and path ids.
func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("userId: Invalid identifier")
	}

	return userID, nil
}

func parsePeriodBound(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
