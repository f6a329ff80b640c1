package postgres

import (
	"context"

	"circlecheck/internal/domain/entity"
	domainerrors "circlecheck/internal/domain/errors"
	"circlecheck/internal/domain/repository"
	"circlecheck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceTokenRepository implements the repository.DeviceTokenRepository interface.
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository is the constructor for deviceTokenRepository.
func NewDeviceTokenRepository(db *gorm.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// FindTokensByUser retrieves every push token registered for a user.
func (repo *deviceTokenRepository) FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteTokens removes the given tokens. Unknown tokens are ignored.
func (repo *deviceTokenRepository) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("token IN ?", tokens).
		Delete(&model.DeviceTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete device tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		UserID: data.UserID,
		Token:  data.Token,
	}
}
