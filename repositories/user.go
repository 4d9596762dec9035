//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"chappy/domain"
	"chappy/errors"
	"chappy/keys"
	"chappy/storage"

	"github.com/samber/lo"
)

type IUserRepository interface {
	CreateUser(username, hashedPassword string) (User, error)
	GetUser(username string) (User, error)
	ListUsers() ([]domain.User, error)
	DeleteUser(username string) error
}

// User is the stored account, credentials included.
// Only the auth service reads PasswordHash; everything else gets a domain.User.
type User struct {
	Username     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

type UserRepository struct {
	store storage.KeyedStore
	log   *slog.Logger
	now   func() time.Time
}

func NewUserRepository(store storage.KeyedStore, log *slog.Logger) UserRepository {
	return UserRepository{store: store, log: log, now: time.Now}
}

// CreateUser persists a new profile. Usernames are unique case-insensitively.
// The existence check and the write are two store calls: two concurrent
// registrations of the same name may both succeed, the last write wins.
func (u UserRepository) CreateUser(username, hashedPassword string) (User, error) {
	existing, err := u.store.Query(keys.UserKey(username), keys.UserProfileKey(username))
	if err != nil {
		return User{}, err
	}
	if len(existing) > 0 {
		return User{}, errors.ErrUserAlreadyExists
	}

	user := User{
		Username:     username,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		CreatedAt:    u.now().UTC().Truncate(time.Second),
	}
	if err = u.store.Put(keys.UserKey(username), keys.UserProfileKey(username), encodeUser(user)); err != nil {
		return User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUser(username string) (User, error) {
	items, err := u.store.Query(keys.UserKey(username), keys.UserProfileKey(username))
	if err != nil {
		return User{}, err
	}
	if len(items) == 0 {
		return User{}, errors.NotFound("user")
	}
	return decodeUser(items[0].Value)
}

// ListUsers scans every profile, sorted by username.
func (u UserRepository) ListUsers() ([]domain.User, error) {
	items, err := u.store.Scan(storage.HasPartitionPrefix(keys.UserPartitionPrefix(), keys.ProfilePrefix()))
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		user, err := decodeUser(item.Value)
		if err != nil {
			return nil, err
		}
		users = append(users, domain.User{Username: user.Username})
	}
	slices.SortFunc(users, func(a, b domain.User) int {
		return strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username))
	})
	return lo.UniqBy(users, func(user domain.User) string { return strings.ToLower(user.Username) }), nil
}

// DeleteUser removes the profile only. Messages sent or received by the user
// stay in their channel and conversation partitions.
func (u UserRepository) DeleteUser(username string) error {
	if _, err := u.GetUser(username); err != nil {
		return err
	}
	if err := u.store.Delete(keys.UserKey(username), keys.UserProfileKey(username)); err != nil {
		return err
	}
	u.log.Info("User profile deleted", "username", username)
	return nil
}
