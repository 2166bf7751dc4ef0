package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	pb "roomhub/proto/chat"

	"roomhub/domain"
)

type IUserRepository interface {
	FindOrCreateUser(displayName string) (domain.User, error)
	GetUser(id string) (domain.User, error)
	ListUsers() ([]domain.User, error)
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return UserRepository{store: store}
}

// FindOrCreateUser makes Login idempotent per display name: the usernames
// collection indexes display name to user id, and both records are written in
// the same transaction so a crash cannot leave a user without its index.
func (u UserRepository) FindOrCreateUser(displayName string) (domain.User, error) {
	var user domain.User
	err := u.store.Update(func(tx *Txn) error {
		if idBytes, err := tx.Get(CollectionUsernames, displayName); err == nil {
			existing, err := getUser(tx, string(idBytes))
			if err != nil {
				return err
			}
			user = existing
			return nil
		}

		user = domain.User{
			ID:          uuid.NewString(),
			DisplayName: displayName,
			CreatedAt:   time.Now().UTC(),
		}
		data, err := proto.Marshal(fromUser(user))
		if err != nil {
			return err
		}
		if err = tx.Put(CollectionUsers, user.ID, data); err != nil {
			return err
		}
		return tx.Put(CollectionUsernames, displayName, []byte(user.ID))
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUser(id string) (domain.User, error) {
	var user domain.User
	err := u.store.View(func(tx *Txn) error {
		found, err := getUser(tx, id)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	return user, err
}

func (u UserRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User
	err := u.store.View(func(tx *Txn) error {
		return tx.ScanPrefix(CollectionUsers, "", func(_ string, value []byte) error {
			var userPb pb.User
			if err := proto.Unmarshal(value, &userPb); err != nil {
				return err
			}
			users = append(users, toUser(&userPb))
			return nil
		})
	})
	return users, err
}

func getUser(tx *Txn, id string) (domain.User, error) {
	value, err := tx.Get(CollectionUsers, id)
	if err != nil {
		return domain.User{}, err
	}
	var userPb pb.User
	if err = proto.Unmarshal(value, &userPb); err != nil {
		return domain.User{}, fmt.Errorf("unmarshal user %s: %w", id, err)
	}
	return toUser(&userPb), nil
}

func fromUser(user domain.User) *pb.User {
	return &pb.User{
		Id:          user.ID,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.UnixNano(),
	}
}

func toUser(userPb *pb.User) domain.User {
	return domain.User{
		ID:          userPb.Id,
		DisplayName: userPb.DisplayName,
		CreatedAt:   time.Unix(0, userPb.CreatedAt).UTC(),
	}
}
