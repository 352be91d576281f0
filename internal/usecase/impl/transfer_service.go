package impl

import (
	"context"
	"log/slog"

	deliverycontext "paygate/internal/delivery/context"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	"paygate/internal/domain/service"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// transferService implements the TransferUsecase interface.
type transferService struct {
	userRepo repository.UserRepository
	gateway  service.PaymentGateway
	ledger   usecase.LedgerUsecase
	newRef   func() string
	logger   *slog.Logger
}

// TransferServiceParams holds dependencies for TransferService, injected by Fx.
type TransferServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Gateway  service.PaymentGateway
	Ledger   usecase.LedgerUsecase
	Logger   *slog.Logger
}

// NewTransferService is the constructor for transferService.
func NewTransferService(params TransferServiceParams) usecase.TransferUsecase {
	return &transferService{
		userRepo: params.UserRepo,
		gateway:  params.Gateway,
		ledger:   params.Ledger,
		newRef:   uuid.NewString,
		logger:   params.Logger,
	}
}

func (srv *transferService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initialize assigns the reference before the gateway call; the ledger row is
// written only once the gateway accepts the charge.
func (srv *transferService) Initialize(ctx context.Context, input *usecase.InitializeTransferInput) (*usecase.InitializeTransferResult, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	reference := srv.newRef()
	logger := srv.log(ctx).With(slog.String("reference", reference))

	result, err := srv.gateway.InitiateBankTransfer(ctx, &service.BankTransferRequest{
		Reference:  reference,
		Amount:     input.Amount,
		Currency:   input.Currency,
		PayerEmail: user.Email,
	})
	if err != nil {
		logger.Error("Gateway call failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGatewayFailed, err.Error())
	}
	if !result.Succeeded() {
		logger.Warn("Gateway rejected charge",
			slog.String("status", result.Status),
			slog.String("message", result.Message),
		)

		return nil, domainerrors.ErrGatewayFailed.WithDetails(result.Message)
	}

	tx, err := srv.ledger.InitiateTransaction(ctx, &usecase.InitiateTransactionInput{
		UserID:    user.ID,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Reference: reference,
		Narration: input.Narration,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record transaction")
	}

	return &usecase.InitializeTransferResult{
		TransactionID: tx.ID,
		Reference:     reference,
		PaymentInfo:   result.Authorization,
	}, nil
}
