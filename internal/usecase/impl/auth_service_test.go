package impl

import (
	"context"
	"testing"
	"time"

	"hirehub/internal/domain/entity"
	domainerrors "hirehub/internal/domain/errors"
	"hirehub/internal/domain/repository"
	mockRepo "hirehub/internal/mocks/repository"
	mockSvc "hirehub/internal/mocks/service"
	"hirehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewAuthService(txManager, hasher, tokenSvc, newDiscardLogger())

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
	}
}

func companyInput() *usecase.RegisterCompanyInput {
	return &usecase.RegisterCompanyInput{
		CompanyName: "Acme Corp",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@acme.example",
		Password:    "Abcdef1!",
		PhoneNumber: "+1234567890",
		Industry:    "Software",
	}
}

func candidateInput() *usecase.RegisterCandidateInput {
	return &usecase.RegisterCandidateInput{
		FirstName:   "John",
		LastName:    "Smith",
		Email:       "john@example.com",
		Password:    "Abcdef1!",
		PhoneNumber: "+1234567890",
		Skills:      "Go, SQL",
	}
}

func TestAuthService_RegisterCompany_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := companyInput()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().RoleRepo().Return(roleRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	roleRepo.EXPECT().
		FindByName(ctx, entity.RoleNameCompany).
		Return(&entity.Role{ID: uuid.New(), Name: entity.RoleNameCompany, Description: "company"}, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	userID := uuid.New()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	fx.tokenSvc.EXPECT().GenerateAccessToken(input.Email, []string{entity.RoleNameCompany}).Return("access-token", nil)
	fx.tokenSvc.EXPECT().GenerateRefreshToken(input.Email).Return("refresh-token", nil)
	userRepo.EXPECT().UpdateRefreshToken(ctx, userID, "refresh-token").Return(nil)
	fx.tokenSvc.EXPECT().AccessTokenTTL().Return(24 * time.Hour)

	output, err := fx.service.RegisterCompany(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "Bearer", output.TokenType)
	assert.Equal(t, int64(86400), output.ExpiresIn)
	assert.Equal(t, input.Email, output.Email)
	assert.Equal(t, entity.RoleNameCompany, output.Role)
	assert.Equal(t, "COMPANY", output.UserType)
}

func TestAuthService_RegisterCandidate_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := candidateInput()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().RoleRepo().Return(roleRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	roleRepo.EXPECT().
		FindByName(ctx, entity.RoleNameCandidate).
		Return(&entity.Role{ID: uuid.New(), Name: entity.RoleNameCandidate, Description: "candidate"}, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	userID := uuid.New()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			require.NotNil(t, user.CandidateProfile)
			assert.True(t, user.CandidateProfile.Available)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)

	fx.tokenSvc.EXPECT().GenerateAccessToken(input.Email, []string{entity.RoleNameCandidate}).Return("access-token", nil)
	fx.tokenSvc.EXPECT().GenerateRefreshToken(input.Email).Return("refresh-token", nil)
	userRepo.EXPECT().UpdateRefreshToken(ctx, userID, "refresh-token").Return(nil)
	fx.tokenSvc.EXPECT().AccessTokenTTL().Return(24 * time.Hour)

	output, err := fx.service.RegisterCandidate(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleNameCandidate, output.Role)
	assert.Equal(t, "CANDIDATE", output.UserType)
}

func TestAuthService_RegisterCompany_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := companyInput()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

	output, err := fx.service.RegisterCompany(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", appErr.ErrorCode())
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestAuthService_RegisterCompany_WeakPassword_NoPersistence(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := companyInput()
	input.Password = "abc12!"

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	// Email passes format and uniqueness, then the password check fails.
	// Nothing must be hashed or persisted after that point.
	userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

	output, err := fx.service.RegisterCompany(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WEAK_PASSWORD", appErr.ErrorCode())
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterCompany_MissingCompanyName(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := companyInput()
	input.CompanyName = "   "

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

	_, err := fx.service.RegisterCompany(ctx, input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_FIELD", appErr.ErrorCode())
}

func TestAuthService_Login_Success_RotatesRefreshToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:                    userID,
		FirstName:             "Jane",
		LastName:              "Doe",
		Email:                 "jane@acme.example",
		PasswordHash:          "stored-hash",
		Roles:                 entity.Roles{{Name: entity.RoleNameCompany}},
		Enabled:               true,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Active:                true,
		RefreshToken:          "old-refresh-token",
		Type:                  entity.UserTypeCompany,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Abcdef1!", "stored-hash").Return(true)
	fx.tokenSvc.EXPECT().GenerateAccessToken(user.Email, []string{entity.RoleNameCompany}).Return("new-access", nil)
	fx.tokenSvc.EXPECT().GenerateRefreshToken(user.Email).Return("new-refresh", nil)
	userRepo.EXPECT().UpdateRefreshToken(ctx, userID, "new-refresh").Return(nil)
	fx.tokenSvc.EXPECT().AccessTokenTTL().Return(24 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Abcdef1!"})

	require.NoError(t, err)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.NotEqual(t, "old-refresh-token", output.RefreshToken)
	assert.Equal(t, "new-refresh", user.RefreshToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jane@acme.example",
		PasswordHash: "stored-hash",
		Enabled:      true,
		Active:       true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("WrongPass1!", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "WrongPass1!"})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, 401, appErr.HTTPCode())

	// A failed login never mutates the stored refresh token.
	userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "Abcdef1!"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:                    uuid.New(),
		Email:                 "jane@acme.example",
		PasswordHash:          "stored-hash",
		Enabled:               false,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Active:                true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Abcdef1!", "stored-hash").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Abcdef1!"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCOUNT_DISABLED", appErr.ErrorCode())
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:                    userID,
		Email:                 "jane@acme.example",
		Roles:                 entity.Roles{{Name: entity.RoleNameCompany}},
		Enabled:               true,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Active:                true,
		RefreshToken:          "current-refresh",
		Type:                  entity.UserTypeCompany,
	}

	fx.tokenSvc.EXPECT().
		ValidateRefreshToken("current-refresh").
		Return(claimsFor(user.Email), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenSvc.EXPECT().GenerateAccessToken(user.Email, []string{entity.RoleNameCompany}).Return("new-access", nil)
	fx.tokenSvc.EXPECT().GenerateRefreshToken(user.Email).Return("new-refresh", nil)
	userRepo.EXPECT().UpdateRefreshToken(ctx, userID, "new-refresh").Return(nil)
	fx.tokenSvc.EXPECT().AccessTokenTTL().Return(24 * time.Hour)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "current-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_RotatedTokenRejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jane@acme.example",
		Enabled:      true,
		Active:       true,
		RefreshToken: "current-refresh",
	}

	// The presented token is valid JWT-wise but has been rotated out.
	fx.tokenSvc.EXPECT().
		ValidateRefreshToken("stale-refresh").
		Return(claimsFor(user.Email), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	expectTransaction(t, fx.txManager, factory)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale-refresh"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TOKEN_INVALID", appErr.ErrorCode())
	userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenSvc.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, domainerrors.ErrTokenInvalid)

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "garbage"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TOKEN_INVALID", appErr.ErrorCode())
	// No transaction runs for a token that fails signature/expiry checks.
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_EnsureDefaultRoles_SeedsAllThree(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().RoleRepo().Return(roleRepo)
	expectTransaction(t, fx.txManager, factory)

	for _, name := range []string{entity.RoleNameAdmin, entity.RoleNameCompany, entity.RoleNameCandidate} {
		roleRepo.EXPECT().FindByName(ctx, name).Return(nil, repository.ErrRoleNotFound)
		roleRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(role *entity.Role) bool { return role.Name == name })).
			Return(nil)
	}

	require.NoError(t, fx.service.EnsureDefaultRoles(ctx))
}

func TestGetOrCreateRole_CreateConflictRefetches(t *testing.T) {
	ctx := context.Background()
	roleRepo := mockRepo.NewMockRoleRepository(t)

	winner := &entity.Role{ID: uuid.New(), Name: entity.RoleNameCandidate, Description: "candidate"}

	roleRepo.EXPECT().FindByName(ctx, entity.RoleNameCandidate).Return(nil, repository.ErrRoleNotFound).Once()
	roleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Role")).
		Return(repository.ErrRoleAlreadyExists)
	roleRepo.EXPECT().FindByName(ctx, entity.RoleNameCandidate).Return(winner, nil).Once()

	role, err := getOrCreateRole(ctx, roleRepo, entity.RoleNameCandidate)

	require.NoError(t, err)
	assert.Equal(t, winner.ID, role.ID)
}

func TestGetOrCreateRole_DerivedDescription(t *testing.T) {
	ctx := context.Background()
	roleRepo := mockRepo.NewMockRoleRepository(t)

	roleRepo.EXPECT().FindByName(ctx, entity.RoleNameAdmin).Return(nil, repository.ErrRoleNotFound)
	roleRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(role *entity.Role) bool {
			return role.Name == entity.RoleNameAdmin && role.Description == "admin"
		})).
		Return(nil)

	role, err := getOrCreateRole(ctx, roleRepo, entity.RoleNameAdmin)

	require.NoError(t, err)
	assert.Equal(t, "admin", role.Description)
}

func TestGetOrCreateRole_LookupFailure(t *testing.T) {
	ctx := context.Background()
	roleRepo := mockRepo.NewMockRoleRepository(t)

	roleRepo.EXPECT().
		FindByName(ctx, entity.RoleNameAdmin).
		Return(nil, errors.New("connection reset"))

	_, err := getOrCreateRole(ctx, roleRepo, entity.RoleNameAdmin)

	require.Error(t, err)
}

func TestAuthService_NilInputRejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// A body that binds to a nil pointer must come back as a validation
	// failure, not a dereference inside the engine.
	calls := map[string]func() error{
		"register company": func() error {
			_, err := fx.service.RegisterCompany(ctx, nil)

			return err
		},
		"register candidate": func() error {
			_, err := fx.service.RegisterCandidate(ctx, nil)

			return err
		},
		"login": func() error {
			_, err := fx.service.Login(ctx, nil)

			return err
		},
		"refresh": func() error {
			_, err := fx.service.Refresh(ctx, nil)

			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "MISSING_FIELD", appErr.ErrorCode())
		})
	}

	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
