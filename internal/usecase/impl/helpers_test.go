package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"paygate/internal/domain/repository"
	mockRepo "paygate/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the callback against factory and return its result.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

type txMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
}

func newTxMocks(t *testing.T) *txMocks {
	m := &txMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
	}
	expectTx(m.txManager, m.factory)

	return m
}
