package postgres

import (
	"context"

	"circlecheck/internal/domain/entity"
	domainerrors "circlecheck/internal/domain/errors"
	"circlecheck/internal/domain/repository"
	"circlecheck/internal/errors"
	"circlecheck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// enterQuery inserts or flips a pair to inside. A returned row means the pair was outside or absent.
	enterQuery = `INSERT INTO entry_states (subscription_id, subject_user_id, inside, updated_at)
VALUES (?, ?, true, ?)
ON CONFLICT (subscription_id, subject_user_id) DO UPDATE
SET inside = EXCLUDED.inside, updated_at = EXCLUDED.updated_at
WHERE entry_states.inside = false
RETURNING subscription_id`

	// exitQuery flips an inside pair to outside. A returned row means the pair was inside.
	exitQuery = `UPDATE entry_states
SET inside = false, updated_at = ?
WHERE subscription_id = ? AND subject_user_id = ? AND inside = true
RETURNING subscription_id`

	// refreshQuery only moves the timestamp of an existing row.
	refreshQuery = `UPDATE entry_states
SET updated_at = ?
WHERE subscription_id = ? AND subject_user_id = ?`

	// outsideQuery records an outside observation without touching an existing flag.
	outsideQuery = `INSERT INTO entry_states (subscription_id, subject_user_id, inside, updated_at)
VALUES (?, ?, false, ?)
ON CONFLICT (subscription_id, subject_user_id) DO UPDATE
SET updated_at = EXCLUDED.updated_at`
)

// entryStateRepository implements the repository.EntryStateRepository interface.
type entryStateRepository struct {
	db *gorm.DB
}

// NewEntryStateRepository is the constructor for entryStateRepository.
func NewEntryStateRepository(db *gorm.DB) repository.EntryStateRepository {
	return &entryStateRepository{
		db: db,
	}
}

// Read returns the stored inside flag for the pair.
func (repo *entryStateRepository) Read(ctx context.Context, subscriptionID, subjectUserID uuid.UUID) (bool, bool, error) {
	var stateM model.EntryStateModel

	if err := repo.db.WithContext(ctx).
		Where("subscription_id = ? AND subject_user_id = ?", subscriptionID, subjectUserID).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, false, nil
		}

		return false, false, domainerrors.NewDatabaseExecuteError(err, "failed to read entry state")
	}

	return stateM.Inside, true, nil
}

// Write upserts the state for the pair.
func (repo *entryStateRepository) Write(ctx context.Context, state *entity.EntryState) error {
	stateM := fromEntryStateDomain(state)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscription_id"}, {Name: "subject_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"inside", "updated_at"}),
		}).
		Create(stateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubscriptionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to write entry state")
	}

	return nil
}

// ApplyTransition stores the state with conditional statements so each edge is reported once.
// When the conditional statement does not match, the fallback only refreshes the timestamp,
// which is equivalent to this observation being ordered before any concurrent one.
func (repo *entryStateRepository) ApplyTransition(ctx context.Context, state *entity.EntryState) (entity.Transition, error) {
	db := repo.db.WithContext(ctx)

	if state.Inside {
		changed, err := repo.returnsRow(db, enterQuery, state.SubscriptionID, state.SubjectUserID, state.UpdatedAt)
		if err != nil {
			return entity.TransitionNone, err
		}
		if changed {
			return entity.TransitionEnter, nil
		}

		if err := db.Exec(refreshQuery, state.UpdatedAt, state.SubscriptionID, state.SubjectUserID).Error; err != nil {
			return entity.TransitionNone, domainerrors.NewDatabaseExecuteError(err, "failed to refresh entry state")
		}

		return entity.TransitionNone, nil
	}

	changed, err := repo.returnsRow(db, exitQuery, state.UpdatedAt, state.SubscriptionID, state.SubjectUserID)
	if err != nil {
		return entity.TransitionNone, err
	}
	if changed {
		return entity.TransitionExit, nil
	}

	if err := db.Exec(outsideQuery, state.SubscriptionID, state.SubjectUserID, state.UpdatedAt).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return entity.TransitionNone, repository.ErrSubscriptionNotFound
		}

		return entity.TransitionNone, domainerrors.NewDatabaseExecuteError(err, "failed to record outside state")
	}

	return entity.TransitionNone, nil
}

// returnsRow runs a RETURNING statement and reports whether it affected a row
func (repo *entryStateRepository) returnsRow(db *gorm.DB, query string, args ...any) (bool, error) {
	var rows []model.EntryStateModel

	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, repository.ErrSubscriptionNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to apply entry state transition")
	}

	return len(rows) > 0, nil
}

// --- Mapper Functions ---

// fromEntryStateDomain converts a domain EntryState entity to a GORM EntryStateModel.
func fromEntryStateDomain(data *entity.EntryState) *model.EntryStateModel {
	if data == nil {
		return nil
	}

	return &model.EntryStateModel{
		SubscriptionID: data.SubscriptionID,
		SubjectUserID:  data.SubjectUserID,
		Inside:         data.Inside,
		UpdatedAt:      data.UpdatedAt,
	}
}
