package impl

import (
	"context"
	"testing"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	mockRepo "postboard/internal/mocks/repository"
	mockSvc "postboard/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()
	storeErr := domainerrors.NewStoreError("find user by email", errors.New("timeout"))

	tests := []struct {
		name      string
		setup     func(users *mockRepo.MockUserRepository, tokens *mockSvc.MockTokenService)
		wantEmail string
		wantErr   error
	}{
		{
			name: "valid access token",
			setup: func(users *mockRepo.MockUserRepository, tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("tok", entity.TokenKindAccess).Return("a@b.com", nil)
				users.EXPECT().FindByEmail(ctx, "a@b.com").Return(&entity.User{ID: 1, Email: "a@b.com"}, nil)
			},
			wantEmail: "a@b.com",
		},
		{
			name: "kind mismatch",
			setup: func(_ *mockRepo.MockUserRepository, tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("tok", entity.TokenKindAccess).Return("", domainerrors.ErrTokenKindMismatch)
			},
			wantErr: domainerrors.ErrTokenKindMismatch,
		},
		{
			name: "deleted user",
			setup: func(users *mockRepo.MockUserRepository, tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("tok", entity.TokenKindAccess).Return("a@b.com", nil)
				users.EXPECT().FindByEmail(ctx, "a@b.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrIdentityNotFound,
		},
		{
			name: "store unavailable",
			setup: func(users *mockRepo.MockUserRepository, tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("tok", entity.TokenKindAccess).Return("a@b.com", nil)
				users.EXPECT().FindByEmail(ctx, "a@b.com").Return(nil, storeErr)
			},
			wantErr: domainerrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mockRepo.NewMockUserRepository(t)
			tokens := mockSvc.NewMockTokenService(t)
			tt.setup(users, tokens)

			srv := NewIdentityService(IdentityServiceParams{
				UserRepo:     users,
				TokenService: tokens,
				Logger:       newDiscardLogger(),
			})

			user, err := srv.Resolve(ctx, "tok")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, user.Email)
		})
	}
}

func TestIdentityService_ListUsers(t *testing.T) {
	ctx := context.Background()
	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().List(ctx).Return([]*entity.User{{ID: 1}, {ID: 2, Confirmed: true}}, nil)

	srv := NewIdentityService(IdentityServiceParams{
		UserRepo:     users,
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	list, err := srv.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}
