package postgres

import (
	"context"

	"hirehub/internal/domain/entity"
	domainerrors "hirehub/internal/domain/errors"
	"hirehub/internal/domain/repository"
	"hirehub/internal/errors"
	"hirehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository with GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to the given session,
// which may be a transaction handle.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a user by exact email with roles and profile loaded.
// Email comparison is case-sensitive: the column collation decides equality,
// no normalization happens here.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("CompanyProfile").
		Preload("CandidateProfile").
		Where("email = ?", email).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserEntity(&row), nil
}

// ExistsByEmail reports whether a user with the exact email is stored.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// Create persists the user with its variant profile and role assignments in
// one insert graph. Losing the race on the unique email constraint maps to
// the email conflict error so concurrent duplicate registrations surface as
// 409, not 500.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := toUserModel(user)

	// Roles already exist; associate without attempting to upsert them.
	err := r.db.WithContext(ctx).
		Omit("Roles.*").
		Create(row).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	if user.CompanyProfile != nil {
		user.CompanyProfile.UserID = row.ID
	}
	if user.CandidateProfile != nil {
		user.CandidateProfile.UserID = row.ID
	}

	return nil
}

// UpdateRefreshToken overwrites the stored refresh token, bumping the
// optimistic-lock version and updated-at in the same statement.
func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"refresh_token": refreshToken,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserModel(user *entity.User) *model.UserModel {
	row := &model.UserModel{
		ID:                    user.ID,
		FirstName:             user.FirstName,
		LastName:              user.LastName,
		Email:                 user.Email,
		PasswordHash:          user.PasswordHash,
		PhoneNumber:           user.PhoneNumber,
		UserType:              user.Type.String(),
		Enabled:               user.Enabled,
		AccountNonExpired:     user.AccountNonExpired,
		AccountNonLocked:      user.AccountNonLocked,
		CredentialsNonExpired: user.CredentialsNonExpired,
		Active:                user.Active,
		RefreshToken:          user.RefreshToken,
		Version:               user.Version,
	}

	row.Roles = make([]model.RoleModel, len(user.Roles))
	for i, role := range user.Roles {
		row.Roles[i] = model.RoleModel{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
		}
	}

	if profile := user.CompanyProfile; profile != nil {
		row.CompanyProfile = &model.CompanyProfileModel{
			CompanyName: profile.CompanyName,
			Industry:    profile.Industry,
			Website:     profile.Website,
			Description: profile.Description,
			Size:        profile.Size,
			Location:    profile.Location,
		}
	}

	if profile := user.CandidateProfile; profile != nil {
		row.CandidateProfile = &model.CandidateProfileModel{
			Bio:             profile.Bio,
			Skills:          profile.Skills,
			CurrentPosition: profile.CurrentPosition,
			Education:       profile.Education,
			Experience:      profile.Experience,
			ResumeURL:       profile.ResumeURL,
			LinkedinURL:     profile.LinkedinURL,
			GithubURL:       profile.GithubURL,
			PortfolioURL:    profile.PortfolioURL,
			Available:       profile.Available,
		}
	}

	return row
}

func toUserEntity(row *model.UserModel) *entity.User {
	user := &entity.User{
		ID:                    row.ID,
		FirstName:             row.FirstName,
		LastName:              row.LastName,
		Email:                 row.Email,
		PasswordHash:          row.PasswordHash,
		PhoneNumber:           row.PhoneNumber,
		Type:                  entity.UserType(row.UserType),
		Enabled:               row.Enabled,
		AccountNonExpired:     row.AccountNonExpired,
		AccountNonLocked:      row.AccountNonLocked,
		CredentialsNonExpired: row.CredentialsNonExpired,
		Active:                row.Active,
		RefreshToken:          row.RefreshToken,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
		Version:               row.Version,
	}

	user.Roles = make(entity.Roles, len(row.Roles))
	for i, role := range row.Roles {
		user.Roles[i] = toRoleEntity(&role)
	}

	if profile := row.CompanyProfile; profile != nil {
		memberIDs := make([]uuid.UUID, len(profile.Members))
		for i, member := range profile.Members {
			memberIDs[i] = member.ID
		}
		user.CompanyProfile = &entity.CompanyProfile{
			UserID:      profile.UserID,
			CompanyName: profile.CompanyName,
			Industry:    profile.Industry,
			Website:     profile.Website,
			Description: profile.Description,
			Size:        profile.Size,
			Location:    profile.Location,
			MemberIDs:   memberIDs,
			UpdatedAt:   profile.UpdatedAt,
		}
	}

	if profile := row.CandidateProfile; profile != nil {
		user.CandidateProfile = &entity.CandidateProfile{
			UserID:          profile.UserID,
			Bio:             profile.Bio,
			Skills:          profile.Skills,
			CurrentPosition: profile.CurrentPosition,
			Education:       profile.Education,
			Experience:      profile.Experience,
			ResumeURL:       profile.ResumeURL,
			LinkedinURL:     profile.LinkedinURL,
			GithubURL:       profile.GithubURL,
			PortfolioURL:    profile.PortfolioURL,
			Available:       profile.Available,
			UpdatedAt:       profile.UpdatedAt,
		}
	}

	return user
}
