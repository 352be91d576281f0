package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "paygate/internal/delivery/context"
	"paygate/internal/domain/entity"
	"paygate/internal/domain/repository"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	txManager repository.TransactionManager
	txRepo    repository.TransactionRepository
	now       func() time.Time
	logger    *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TxRepo    repository.TransactionRepository
	Logger    *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager: params.TxManager,
		txRepo:    params.TxRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ledgerService) InitiateTransaction(ctx context.Context, input *usecase.InitiateTransactionInput) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Status:      entity.TransactionStatusPending,
		Reference:   input.Reference,
		Narration:   input.Narration,
		InitiatedAt: srv.now(),
	}

	if err := srv.txRepo.Create(ctx, tx); err != nil {
		srv.log(ctx).Error("Failed to initiate transaction",
			slog.String("reference", input.Reference),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Transaction initiated",
		slog.Any("transaction_id", tx.ID),
		slog.String("reference", tx.Reference),
	)

	return tx, nil
}

// CompleteTransaction reads then writes inside one transaction; an unknown
// reference stops at the read.
func (srv *ledgerService) CompleteTransaction(ctx context.Context, reference string, status entity.TransactionStatus) (*entity.Transaction, error) {
	var completed *entity.Transaction

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txRepo := repoFactory.NewTransactionRepository()

		current, err := txRepo.FindByReference(ctx, reference)
		if err != nil {
			return err
		}

		completedAt := srv.now()
		if err := txRepo.UpdateCompletion(ctx, reference, status, completedAt); err != nil {
			return err
		}

		current.Status = status
		current.CompletedAt = &completedAt
		completed = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to complete transaction",
			slog.String("reference", reference),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Transaction completed",
		slog.String("reference", reference),
		slog.String("status", string(status)),
	)

	return completed, nil
}

func (srv *ledgerService) GetTransactionsByUser(ctx context.Context, userID uuid.UUID) []*entity.Transaction {
	txs, err := srv.txRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list user transactions", slog.Any("user_id", userID), slog.Any("error", err))

		return []*entity.Transaction{}
	}

	return txs
}

func (srv *ledgerService) GetTransactionsByTime(ctx context.Context, query *usecase.PeriodQuery) []*entity.Transaction {
	txs, err := srv.txRepo.ListByInitiationRange(ctx, repository.TransactionFilter{
		From:   query.Start,
		To:     query.End,
		UserID: query.UserID,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list transactions by period",
			slog.Time("start", query.Start),
			slog.Time("end", query.End),
			slog.Any("error", err),
		)

		return []*entity.Transaction{}
	}

	return txs
}

func (srv *ledgerService) FetchTransactionByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	return srv.txRepo.FindByReference(ctx, reference)
}
