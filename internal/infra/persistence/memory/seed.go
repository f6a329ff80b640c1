package memory

import (
	"log/slog"

	"circlecheck/config"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Seed is the fixture format accepted by storage.seedFile
type Seed struct {
	Circles      []SeedCircle      `koanf:"circles"`
	DeviceTokens []SeedDeviceToken `koanf:"deviceTokens"`
}

// SeedCircle lists the members of a circle and the geofences watching them
type SeedCircle struct {
	ID            string             `koanf:"id"`
	Members       []string           `koanf:"members"`
	Subscriptions []SeedSubscription `koanf:"subscriptions"`
}

// SeedSubscription is a radius subscription inside a SeedCircle
type SeedSubscription struct {
	ID        string  `koanf:"id"`
	Owner     string  `koanf:"owner"`
	CenterLat float64 `koanf:"centerLat"`
	CenterLng float64 `koanf:"centerLng"`
	RadiusM   float64 `koanf:"radiusM"`
}

// SeedDeviceToken registers a push token for a user
type SeedDeviceToken struct {
	UserID string `koanf:"userId"`
	Token  string `koanf:"token"`
}

// NewSeededStore creates the store, loading storage.seedFile when the memory driver is selected
func NewSeededStore(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	store := NewStore()

	if cfg.Storage == nil || cfg.Storage.Driver != constants.StorageDriverMemory || cfg.Storage.SeedFile == "" {
		return store, nil
	}

	seed, err := LoadSeed(cfg.Storage.SeedFile)
	if err != nil {
		return nil, err
	}

	if err := store.Apply(seed); err != nil {
		return nil, errors.Wrapf(err, "apply seed %s", cfg.Storage.SeedFile)
	}

	logger.Info("Seeded in-memory store",
		slog.String("file", cfg.Storage.SeedFile),
		slog.Int("circles", len(seed.Circles)),
		slog.Int("deviceTokens", len(seed.DeviceTokens)),
	)

	return store, nil
}

// LoadSeed reads a YAML fixture
func LoadSeed(path string) (*Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed %s failed", path)
	}

	seed := new(Seed)
	if err := k.Unmarshal("", seed); err != nil {
		return nil, errors.Wrapf(err, "unmarshal seed %s failed", path)
	}

	return seed, nil
}

// Apply adds every circle, subscription and token of the seed. Nothing is added when an id is invalid.
func (s *Store) Apply(seed *Seed) error {
	type parsedCircle struct {
		id      uuid.UUID
		members []uuid.UUID
		subs    []*entity.RadiusSubscription
	}

	circles := make([]parsedCircle, 0, len(seed.Circles))
	for _, c := range seed.Circles {
		circleID, err := uuid.Parse(c.ID)
		if err != nil {
			return errors.Wrapf(err, "circle id %q", c.ID)
		}

		parsed := parsedCircle{id: circleID}
		for _, m := range c.Members {
			memberID, err := uuid.Parse(m)
			if err != nil {
				return errors.Wrapf(err, "member id %q", m)
			}
			parsed.members = append(parsed.members, memberID)
		}

		for _, sub := range c.Subscriptions {
			subID, err := uuid.Parse(sub.ID)
			if err != nil {
				return errors.Wrapf(err, "subscription id %q", sub.ID)
			}
			ownerID, err := uuid.Parse(sub.Owner)
			if err != nil {
				return errors.Wrapf(err, "subscription owner %q", sub.Owner)
			}
			parsed.subs = append(parsed.subs, &entity.RadiusSubscription{
				ID:           subID,
				OwnerUserID:  ownerID,
				CenterLat:    sub.CenterLat,
				CenterLng:    sub.CenterLng,
				RadiusMeters: sub.RadiusM,
			})
		}

		circles = append(circles, parsed)
	}

	tokenOwners := make([]uuid.UUID, 0, len(seed.DeviceTokens))
	for _, t := range seed.DeviceTokens {
		userID, err := uuid.Parse(t.UserID)
		if err != nil {
			return errors.Wrapf(err, "device token user id %q", t.UserID)
		}
		if t.Token == "" {
			return errors.Errorf("empty device token for user %s", t.UserID)
		}
		tokenOwners = append(tokenOwners, userID)
	}

	for _, c := range circles {
		for _, m := range c.members {
			s.AddMember(c.id, m)
		}
		for _, sub := range c.subs {
			s.AddSubscription(c.id, sub)
		}
	}
	for i, t := range seed.DeviceTokens {
		s.AddDeviceToken(tokenOwners[i], t.Token)
	}

	return nil
}
