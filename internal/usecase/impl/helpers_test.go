package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"delishub/internal/domain/repository"
	mockRepo "delishub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txMocks are the repositories handed to the transaction callback.
type txMocks struct {
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	recipeRepo  *mockRepo.MockRecipeRepository
	commentRepo *mockRepo.MockCommentRepository
}

// expectTx makes txManager run the callback once against fresh repository mocks.
// Repository accessors may be called any number of times.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) *txMocks {
	t.Helper()

	m := &txMocks{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		recipeRepo:  mockRepo.NewMockRecipeRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
	}
	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.factory.EXPECT().RecipeRepo().Return(m.recipeRepo).Maybe()
	m.factory.EXPECT().CommentRepo().Return(m.commentRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Once()

	return m
}
