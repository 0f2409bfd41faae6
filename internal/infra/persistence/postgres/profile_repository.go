// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cuida/internal/domain/entity"
	domainerrors "cuida/internal/domain/errors"
	"cuida/internal/domain/repository"
	"cuida/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// SaveDetails creates or replaces the extended profile of a user. The upsert
// on the user_id primary key keeps the one-record-per-user invariant.
func (repo *profileRepository) SaveDetails(ctx context.Context, details *entity.UserDetails) error {
	detailsM := fromDetailsDomain(details)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(detailsM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferentialViolation.WrapMessage("unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save user details")
	}

	details.CreatedAt = detailsM.CreatedAt
	details.UpdatedAt = detailsM.UpdatedAt

	return nil
}

// FindDetailsByUser retrieves the extended profile of a user.
func (repo *profileRepository) FindDetailsByUser(ctx context.Context, userID uuid.UUID) (*entity.UserDetails, error) {
	var detailsM model.UserDetailsModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&detailsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserDetailsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user details")
	}

	return toDetailsDomain(&detailsM), nil
}

// DeleteDetails removes the extended profile of a user.
func (repo *profileRepository) DeleteDetails(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserDetailsModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user details")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserDetailsNotFound
	}

	return nil
}

// SaveCurriculum creates or replaces the curriculum of a user.
func (repo *profileRepository) SaveCurriculum(ctx context.Context, curriculum *entity.Curriculum) error {
	curriculumM := fromCurriculumDomain(curriculum)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(curriculumM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferentialViolation.WrapMessage("unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save curriculum")
	}

	curriculum.CreatedAt = curriculumM.CreatedAt
	curriculum.UpdatedAt = curriculumM.UpdatedAt

	return nil
}

// FindCurriculumByUser retrieves the curriculum of a user.
func (repo *profileRepository) FindCurriculumByUser(ctx context.Context, userID uuid.UUID) (*entity.Curriculum, error) {
	var curriculumM model.CurriculumModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&curriculumM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCurriculumNotFound
		}

		return nil, errors.Wrap(err, "failed to find curriculum")
	}

	return toCurriculumDomain(&curriculumM), nil
}

// DeleteCurriculum removes the curriculum of a user.
func (repo *profileRepository) DeleteCurriculum(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CurriculumModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete curriculum")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCurriculumNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDetailsDomain converts a GORM UserDetailsModel to a domain UserDetails entity.
func toDetailsDomain(data *model.UserDetailsModel) *entity.UserDetails {
	if data == nil {
		return nil
	}

	return &entity.UserDetails{
		UserID:           data.UserID,
		Birthday:         data.Birthday,
		Phone:            data.Phone,
		Address:          data.Address,
		Gender:           entity.Gender(data.Gender),
		Occupation:       data.Occupation,
		PhotoURL:         data.PhotoURL,
		SocialReferences: data.SocialReferences,
		IdentityNumber:   data.IdentityNumber,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		User:             toUserDomain(data.User),
	}
}

// fromDetailsDomain converts a domain UserDetails entity to a GORM UserDetailsModel.
func fromDetailsDomain(data *entity.UserDetails) *model.UserDetailsModel {
	if data == nil {
		return nil
	}

	return &model.UserDetailsModel{
		UserID:           data.UserID,
		Birthday:         data.Birthday,
		Phone:            data.Phone,
		Address:          data.Address,
		Gender:           data.Gender.String(),
		Occupation:       data.Occupation,
		PhotoURL:         data.PhotoURL,
		SocialReferences: data.SocialReferences,
		IdentityNumber:   data.IdentityNumber,
	}
}

// toCurriculumDomain converts a GORM CurriculumModel to a domain Curriculum entity.
func toCurriculumDomain(data *model.CurriculumModel) *entity.Curriculum {
	if data == nil {
		return nil
	}

	return &entity.Curriculum{
		UserID:       data.UserID,
		PersonalData: data.PersonalData,
		Experience:   data.Experience,
		Education:    data.Education,
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		User:         toUserDomain(data.User),
	}
}

// fromCurriculumDomain converts a domain Curriculum entity to a GORM CurriculumModel.
func fromCurriculumDomain(data *entity.Curriculum) *model.CurriculumModel {
	if data == nil {
		return nil
	}

	return &model.CurriculumModel{
		UserID:       data.UserID,
		PersonalData: data.PersonalData,
		Experience:   data.Experience,
		Education:    data.Education,
		Notes:        data.Notes,
	}
}
