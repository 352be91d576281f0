package postgres

import (
	"context"
	"time"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	"paygate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for the ledger repository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReferenceConflict.WrapMessage(tx.Reference)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.ID = txM.ID

	return nil
}

func (repo *transactionRepository) FindByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var txM model.TransactionModel
	if err := repo.db.WithContext(ctx).Where("reference = ?", reference).First(&txM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrTransactionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

func (repo *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var rows []model.TransactionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("initiation_date_time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user transactions")
	}

	return toTransactionDomains(rows), nil
}

func (repo *transactionRepository) ListByInitiationRange(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := repo.db.WithContext(ctx).
		Where("initiation_date_time >= ? AND initiation_date_time <= ?", filter.From.UnixMilli(), filter.To.UnixMilli())
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var rows []model.TransactionModel
	if err := query.Order("initiation_date_time ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list transactions by period")
	}

	return toTransactionDomains(rows), nil
}

// UpdateCompletion rewrites status and completion time; re-applying the same
// outcome is harmless.
func (repo *transactionRepository) UpdateCompletion(ctx context.Context, reference string, status entity.TransactionStatus, completedAt time.Time) error {
	completion := completedAt.UnixMilli()
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("reference = ?", reference).
		Updates(map[string]any{
			"status":               string(status),
			"completion_date_time": completion,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete transaction")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTransactionNotFound
	}

	return nil
}

func toTransactionDomains(rows []model.TransactionModel) []*entity.Transaction {
	txs := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		txs = append(txs, toTransactionDomain(&rows[i]))
	}

	return txs
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	tx := &entity.Transaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Amount:      data.Amount,
		Currency:    data.Currency,
		Status:      entity.TransactionStatus(data.Status),
		Reference:   data.Reference,
		Narration:   data.Narration,
		InitiatedAt: time.UnixMilli(data.InitiationDateTime).UTC(),
	}
	if data.CompletionDateTime != nil {
		completed := time.UnixMilli(*data.CompletionDateTime).UTC()
		tx.CompletedAt = &completed
	}

	return tx
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	txM := &model.TransactionModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Amount:             data.Amount,
		Currency:           data.Currency,
		Status:             string(data.Status),
		Reference:          data.Reference,
		Narration:          data.Narration,
		InitiationDateTime: data.InitiatedAt.UnixMilli(),
	}
	if data.CompletedAt != nil {
		completion := data.CompletedAt.UnixMilli()
		txM.CompletionDateTime = &completion
	}

	return txM
}
