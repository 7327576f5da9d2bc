// Package bolt provides BoltDB storage for wspace.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/inovacc/wspace/internal/model"
	"github.com/inovacc/wspace/internal/store"
)

const (
	bucketWorkspaces = "workspaces"      // key: id -> name
	bucketNames      = "workspace_names" // key: name -> id
	bucketDirs       = "dirs"            // key: id -> dirRecord JSON
)

var buckets = []string{bucketWorkspaces, bucketNames, bucketDirs}

var errNotInitialized = errors.New("bucket missing, store not initialized")

type dirRecord struct {
	WorkspaceID int64  `json:"workspace_id"`
	Path        string `json:"path"`
}

// Store implements the store.Store interface on top of bbolt.
type Store struct {
	storage *bbolt.DB
}

var _ store.Store = (*Store)(nil)

// New opens the Bolt database at path, creating it when absent.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, store.Wrap("open", fmt.Errorf("creating database directory: %w", err))
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, store.Wrap("open", err)
	}

	return &Store{storage: instance}, nil
}

// Close closes the database.
func (b *Store) Close() error {
	return store.Wrap("close", b.storage.Close())
}

// Ping checks that a read transaction can be opened.
func (b *Store) Ping(_ context.Context) error {
	return store.Wrap("ping", b.storage.View(func(_ *bbolt.Tx) error { return nil }))
}

// Initialize creates the buckets that do not exist yet.
func (b *Store) Initialize(_ context.Context) error {
	err := b.storage.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}

		return nil
	})

	return store.Wrap("initialize", err)
}

func (b *Store) CreateWorkspace(_ context.Context, name string) (int64, error) {
	if err := model.ValidateName(name); err != nil {
		return 0, err
	}

	var id int64

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		workspaces, names, err := workspaceBuckets(tx)
		if err != nil {
			return err
		}

		if names.Get([]byte(name)) != nil {
			return &store.DuplicateNameError{Name: name}
		}

		seq, err := workspaces.NextSequence()
		if err != nil {
			return err
		}

		id = int64(seq)

		if err := workspaces.Put(itob(id), []byte(name)); err != nil {
			return err
		}

		return names.Put([]byte(name), itob(id))
	})
	if err != nil {
		return 0, store.Wrap("create workspace", err)
	}

	return id, nil
}

func (b *Store) ListWorkspaces(_ context.Context) ([]model.WorkspaceEntry, error) {
	workspaces := make([]model.WorkspaceEntry, 0)

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket, _, err := workspaceBuckets(tx)
		if err != nil {
			return err
		}

		return bucket.ForEach(func(k, v []byte) error {
			workspaces = append(workspaces, model.WorkspaceEntry{ID: btoi(k), Name: string(v)})

			return nil
		})
	})
	if err != nil {
		return nil, store.Wrap("list workspaces", err)
	}

	return workspaces, nil
}

func (b *Store) FindWorkspace(_ context.Context, name string) (model.WorkspaceEntry, error) {
	var entry model.WorkspaceEntry

	err := b.storage.View(func(tx *bbolt.Tx) error {
		_, names, err := workspaceBuckets(tx)
		if err != nil {
			return err
		}

		v := names.Get([]byte(name))
		if v == nil {
			return store.WorkspaceNotFound(name)
		}

		entry = model.WorkspaceEntry{ID: btoi(v), Name: name}

		return nil
	})
	if err != nil {
		return model.WorkspaceEntry{}, store.Wrap("find workspace", err)
	}

	return entry, nil
}

func (b *Store) ListWorkspacesWithDirs(_ context.Context) ([]model.WorkspaceListing, error) {
	listings := make([]model.WorkspaceListing, 0)

	err := b.storage.View(func(tx *bbolt.Tx) error {
		workspaces, _, err := workspaceBuckets(tx)
		if err != nil {
			return err
		}

		index := make(map[int64]int)

		if err := workspaces.ForEach(func(k, v []byte) error {
			id := btoi(k)
			index[id] = len(listings)
			listings = append(listings, model.WorkspaceListing{ID: id, Name: string(v), Dirs: []model.DirEntry{}})

			return nil
		}); err != nil {
			return err
		}

		return forEachDir(tx, func(id int64, rec dirRecord) {
			if i, ok := index[rec.WorkspaceID]; ok {
				listings[i].Dirs = append(listings[i].Dirs, model.DirEntry{ID: id, Path: rec.Path})
			}
		})
	})
	if err != nil {
		return nil, store.Wrap("list workspaces with dirs", err)
	}

	return listings, nil
}

func (b *Store) CreateDir(_ context.Context, workspaceID int64, path string) (int64, error) {
	if err := model.ValidatePath(path); err != nil {
		return 0, err
	}

	var id int64

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		workspaces, _, err := workspaceBuckets(tx)
		if err != nil {
			return err
		}

		if workspaces.Get(itob(workspaceID)) == nil {
			return &store.ForeignKeyError{WorkspaceID: workspaceID}
		}

		dirs, err := bucket(tx, bucketDirs)
		if err != nil {
			return err
		}

		seq, err := dirs.NextSequence()
		if err != nil {
			return err
		}

		id = int64(seq)

		data, err := json.Marshal(dirRecord{WorkspaceID: workspaceID, Path: path})
		if err != nil {
			return err
		}

		return dirs.Put(itob(id), data)
	})
	if err != nil {
		return 0, store.Wrap("create dir", err)
	}

	return id, nil
}

func (b *Store) ListDirs(_ context.Context, workspaceID int64) ([]model.DirEntry, error) {
	dirs := make([]model.DirEntry, 0)

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return forEachDir(tx, func(id int64, rec dirRecord) {
			if rec.WorkspaceID == workspaceID {
				dirs = append(dirs, model.DirEntry{ID: id, Path: rec.Path})
			}
		})
	})
	if err != nil {
		return nil, store.Wrap("list dirs", err)
	}

	return dirs, nil
}

func (b *Store) DeleteDir(_ context.Context, dirID int64) error {
	err := b.storage.Update(func(tx *bbolt.Tx) error {
		dirs, err := bucket(tx, bucketDirs)
		if err != nil {
			return err
		}

		key := itob(dirID)
		if dirs.Get(key) == nil {
			return store.DirNotFound(dirID)
		}

		return dirs.Delete(key)
	})

	return store.Wrap("delete dir", err)
}

func forEachDir(tx *bbolt.Tx, fn func(id int64, rec dirRecord)) error {
	dirs, err := bucket(tx, bucketDirs)
	if err != nil {
		return err
	}

	return dirs.ForEach(func(k, v []byte) error {
		var rec dirRecord
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("decoding dir %d: %w", btoi(k), err)
		}

		fn(btoi(k), rec)

		return nil
	})
}

func workspaceBuckets(tx *bbolt.Tx) (*bbolt.Bucket, *bbolt.Bucket, error) {
	workspaces, err := bucket(tx, bucketWorkspaces)
	if err != nil {
		return nil, nil, err
	}

	names, err := bucket(tx, bucketNames)
	if err != nil {
		return nil, nil, err
	}

	return workspaces, names, nil
}

func bucket(tx *bbolt.Tx, name string) (*bbolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, fmt.Errorf("%s: %w", name, errNotInitialized)
	}

	return b, nil
}

// itob encodes ids big-endian so cursor order is insertion order.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))

	return b
}

func btoi(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
