// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// relevantSubscriptionsQuery calls the SQL function installed by the migrations.
const relevantSubscriptionsQuery = `SELECT subscription_id, owner_user_id, center_lat, center_lng, radius_m
FROM get_relevant_radius_subscriptions(?)`

// subscriptionResolver implements the repository.SubscriptionResolver interface.
type subscriptionResolver struct {
	db *gorm.DB
}

// NewSubscriptionResolver is the constructor for subscriptionResolver.
func NewSubscriptionResolver(db *gorm.DB) repository.SubscriptionResolver {
	return &subscriptionResolver{
		db: db,
	}
}

// FindRelevantSubscriptions returns subscriptions of other members that share a circle with the subject.
func (repo *subscriptionResolver) FindRelevantSubscriptions(ctx context.Context, subjectUserID uuid.UUID) ([]*entity.RadiusSubscription, error) {
	var rows []*model.RelevantSubscriptionRow

	if err := repo.db.WithContext(ctx).
		Raw(relevantSubscriptionsQuery, subjectUserID).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve relevant subscriptions")
	}

	subscriptions := make([]*entity.RadiusSubscription, 0, len(rows))
	for _, row := range rows {
		subscriptions = append(subscriptions, toRadiusSubscriptionDomain(row))
	}

	return subscriptions, nil
}

// --- Mapper Functions ---

// toRadiusSubscriptionDomain converts a resolver row to a domain RadiusSubscription entity.
func toRadiusSubscriptionDomain(data *model.RelevantSubscriptionRow) *entity.RadiusSubscription {
	if data == nil {
		return nil
	}

	return &entity.RadiusSubscription{
		ID:           data.SubscriptionID,
		OwnerUserID:  data.OwnerUserID,
		CenterLat:    data.CenterLat,
		CenterLng:    data.CenterLng,
		RadiusMeters: data.RadiusM,
	}
}
