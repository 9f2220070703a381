package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hirehub/internal/domain/repository"
	"hirehub/internal/domain/service"
	mockRepo "hirehub/internal/mocks/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func claimsFor(email string) *service.Claims {
	return &service.Claims{
		Type: service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: email,
		},
	}
}

// expectTransaction wires the transaction manager mock to run the closure
// against a fresh factory, propagating the closure's error like the real
// implementation does.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
