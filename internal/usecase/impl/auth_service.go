// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"

	"hirehub/internal/domain/entity"
	domainerrors "hirehub/internal/domain/errors"
	"hirehub/internal/domain/repository"
	"hirehub/internal/domain/service"
	"hirehub/internal/usecase"
	"hirehub/internal/validation"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. Each operation runs its
// validation, role resolution, persistence and token issuance inside a single
// transaction, so a failure at any step leaves no partial user record behind.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// RegisterCompany orchestrates the complete company registration process.
func (srv *authService) RegisterCompany(ctx context.Context, input *usecase.RegisterCompanyInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingField.WithDetails("request body")
	}
	srv.logger.Info("Starting company registration", "email", input.Email)

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Fail-fast validation: email format, email uniqueness, password,
		// phone, then the company-specific fields.
		if err := srv.validateNewCredentials(ctx, userRepo, input.Email, input.Password, input.PhoneNumber); err != nil {
			return err
		}
		if err := validation.CompanyRegistration(input.CompanyName, input.Industry); err != nil {
			return err
		}
		if err := validation.URL(input.Website, "website"); err != nil {
			return err
		}

		role, err := getOrCreateRole(ctx, repoFactory.RoleRepo(), entity.RoleNameCompany)
		if err != nil {
			return err
		}

		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrInternalError.WrapMessage("failed to hash password")
		}

		user := entity.NewCompany(input.FirstName, input.LastName, input.Email, passwordHash, input.PhoneNumber, &entity.CompanyProfile{
			CompanyName: input.CompanyName,
			Industry:    input.Industry,
			Website:     input.Website,
			Description: input.Description,
			Size:        input.Size,
			Location:    input.Location,
		})
		user.Roles = entity.Roles{*role}

		output, err = srv.persistAndIssueTokens(ctx, userRepo, user)

		return err
	})
	if err != nil {
		srv.logger.Warn("Company registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Company registered successfully", "email", input.Email)

	return output, nil
}

// RegisterCandidate orchestrates the complete candidate registration process.
func (srv *authService) RegisterCandidate(ctx context.Context, input *usecase.RegisterCandidateInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingField.WithDetails("request body")
	}
	srv.logger.Info("Starting candidate registration", "email", input.Email)

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.validateNewCredentials(ctx, userRepo, input.Email, input.Password, input.PhoneNumber); err != nil {
			return err
		}
		if err := validation.Required(input.FirstName, "firstName"); err != nil {
			return err
		}
		if err := validation.Required(input.LastName, "lastName"); err != nil {
			return err
		}
		for _, link := range []struct{ value, field string }{
			{input.ResumeURL, "resumeUrl"},
			{input.LinkedinURL, "linkedinUrl"},
			{input.GithubURL, "githubUrl"},
			{input.PortfolioURL, "portfolioUrl"},
		} {
			if err := validation.URL(link.value, link.field); err != nil {
				return err
			}
		}

		role, err := getOrCreateRole(ctx, repoFactory.RoleRepo(), entity.RoleNameCandidate)
		if err != nil {
			return err
		}

		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrInternalError.WrapMessage("failed to hash password")
		}

		user := entity.NewCandidate(input.FirstName, input.LastName, input.Email, passwordHash, input.PhoneNumber, &entity.CandidateProfile{
			Bio:             input.Bio,
			Skills:          input.Skills,
			CurrentPosition: input.CurrentPosition,
			Education:       input.Education,
			Experience:      input.Experience,
			ResumeURL:       input.ResumeURL,
			LinkedinURL:     input.LinkedinURL,
			GithubURL:       input.GithubURL,
			PortfolioURL:    input.PortfolioURL,
			Available:       true,
		})
		user.Roles = entity.Roles{*role}

		output, err = srv.persistAndIssueTokens(ctx, userRepo, user)

		return err
	})
	if err != nil {
		srv.logger.Warn("Candidate registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Candidate registered successfully", "email", input.Email)

	return output, nil
}

// Login verifies the presented credentials and issues a fresh token pair.
// A failed credential check leaves the stored refresh token untouched.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingField.WithDetails("request body")
	}
	srv.logger.Debug("Starting login", "email", input.Email)

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.authenticate(ctx, userRepo, input.Email, input.Password)
		if err != nil {
			return err
		}

		output, err = srv.issueTokens(ctx, userRepo, user)

		return err
	})
	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Login successful", "email", input.Email)

	return output, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The presented
// token must equal the one stored on the user record; anything older has been
// rotated out and is rejected.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingField.WithDetails("request body")
	}

	claims, err := srv.tokenSvc.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	var output *usecase.AuthOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrTokenInvalid.WrapMessage("refresh subject has no backing record")
			}

			return errors.Wrap(err, "failed to load user for refresh")
		}

		if user.RefreshToken != input.RefreshToken {
			return domainerrors.ErrTokenInvalid.WrapMessage("refresh token has been rotated")
		}
		if !user.CanAuthenticate() {
			return domainerrors.ErrAccountDisabled.WrapMessage("refresh rejected")
		}

		output, err = srv.issueTokens(ctx, userRepo, user)

		return err
	})
	if err != nil {
		srv.logger.Warn("Token refresh failed", "error", err.Error())

		return nil, err
	}

	return output, nil
}

// EnsureDefaultRoles provisions the built-in roles. It reuses the same
// getOrCreate path as runtime provisioning, so repeated startups are no-ops.
func (srv *authService) EnsureDefaultRoles(ctx context.Context) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()
		for _, name := range []string{entity.RoleNameAdmin, entity.RoleNameCompany, entity.RoleNameCandidate} {
			if _, err := getOrCreateRole(ctx, roleRepo, name); err != nil {
				return errors.Wrapf(err, "failed to seed role %s", name)
			}
		}

		return nil
	})
}

// validateNewCredentials runs the shared registration checks in contract
// order: email format, email uniqueness, password strength, phone format.
func (srv *authService) validateNewCredentials(ctx context.Context, userRepo repository.UserRepository, email, password, phone string) error {
	if err := validation.Email(email); err != nil {
		return err
	}

	taken, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email uniqueness")
	}
	if taken {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("registration failed")
	}

	if err := validation.Password(password); err != nil {
		return err
	}

	return validation.PhoneNumber(phone)
}

// authenticate is the explicit credential check: look the user up by email
// and verify the password hash. Both a missing user and a hash mismatch
// yield the same InvalidCredentials result, with no state mutated.
func (srv *authService) authenticate(ctx context.Context, userRepo repository.UserRepository, email, password string) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if !user.CanAuthenticate() {
		return nil, domainerrors.ErrAccountDisabled.WrapMessage("login rejected")
	}

	return user, nil
}

// persistAndIssueTokens creates the user row and then issues the first token
// pair. A lost race on the unique email constraint surfaces from Create as
// the EmailAlreadyExists conflict.
func (srv *authService) persistAndIssueTokens(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (*usecase.AuthOutput, error) {
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return srv.issueTokens(ctx, userRepo, user)
}

// issueTokens generates a new access/refresh pair, persists the refresh token
// on the user record (rotating out any previous one) and builds the response.
func (srv *authService) issueTokens(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (*usecase.AuthOutput, error) {
	roleNames := user.Roles.Names()

	accessToken, err := srv.tokenSvc.GenerateAccessToken(user.Email, roleNames)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenSvc.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}
	user.RefreshToken = refreshToken

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    service.BearerTokenType,
		ExpiresIn:    int64(srv.tokenSvc.AccessTokenTTL().Seconds()),
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.PrimaryRole().Name,
		UserType:     user.Type.String(),
	}, nil
}
