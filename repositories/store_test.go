package repositories

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"roomhub/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(t.TempDir(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func Test_Get_Absent_Key_Is_NotFound(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	err := store.View(func(tx *Txn) error {
		_, err := tx.Get(CollectionUsers, "ghost")
		return err
	})
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Failed_Transaction_Writes_Nothing(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	boom := fmt.Errorf("boom")
	err := store.Update(func(tx *Txn) error {
		req.NoError(tx.Put(CollectionRooms, "r1", []byte("a")))
		req.NoError(tx.Put(CollectionMemberships, "r1/u1", []byte("b")))
		return boom
	})
	req.ErrorIs(err, errors.ErrStorage)

	err = store.View(func(tx *Txn) error {
		_, err := tx.Get(CollectionRooms, "r1")
		req.ErrorIs(err, errors.ErrNotFound)
		_, err = tx.Get(CollectionMemberships, "r1/u1")
		req.ErrorIs(err, errors.ErrNotFound)
		return nil
	})
	req.NoError(err)
}

func Test_Collections_Are_Independent_Namespaces(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	req.NoError(store.Update(func(tx *Txn) error {
		req.NoError(tx.Put(CollectionUsers, "k", []byte("user")))
		return tx.Put(CollectionRooms, "k", []byte("room"))
	}))

	req.NoError(store.View(func(tx *Txn) error {
		value, err := tx.Get(CollectionUsers, "k")
		req.NoError(err)
		req.Equal([]byte("user"), value)
		value, err = tx.Get(CollectionRooms, "k")
		req.NoError(err)
		req.Equal([]byte("room"), value)
		return nil
	}))
}

func Test_ScanPrefixReverse_Pages_With_Cursor(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	req.NoError(store.Update(func(tx *Txn) error {
		for i := 1; i <= 5; i++ {
			key := fmt.Sprintf("room/%019d", i)
			if err := tx.Put(CollectionMessages, key, []byte{byte(i)}); err != nil {
				return err
			}
		}
		return nil
	}))

	var keys []string
	req.NoError(store.View(func(tx *Txn) error {
		return tx.ScanPrefixReverse(CollectionMessages, "room/", "", func(key string, _ []byte) error {
			keys = append(keys, key)
			return nil
		})
	}))
	req.Len(keys, 5)
	req.Equal(fmt.Sprintf("room/%019d", 5), keys[0])
	req.Equal(fmt.Sprintf("room/%019d", 1), keys[4])

	// Cursor is exclusive: resuming from key 3 yields 2 then 1.
	keys = nil
	req.NoError(store.View(func(tx *Txn) error {
		return tx.ScanPrefixReverse(CollectionMessages, "room/", fmt.Sprintf("%019d", 3), func(key string, _ []byte) error {
			keys = append(keys, key)
			return nil
		})
	}))
	req.Equal([]string{
		fmt.Sprintf("room/%019d", 2),
		fmt.Sprintf("room/%019d", 1),
	}, keys)
}
