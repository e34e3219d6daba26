package snapshot

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

// ObjectStore is the remote blob backend used for s3:// locations.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// Store implements ports.SnapshotStore over local files and S3 objects.
type Store struct {
	files   *fileBackend
	objects ObjectStore
	logger  ports.Logger
}

type Option func(*Store)

// WithFs replaces the local filesystem, e.g. with afero.NewMemMapFs in tests.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		if fs != nil {
			s.files.fs = fs
		}
	}
}

func WithObjectStore(objects ObjectStore) Option {
	return func(s *Store) {
		s.objects = objects
	}
}

func NewStore(logger ports.Logger, opts ...Option) *Store {
	s := &Store{
		files:  &fileBackend{fs: afero.NewOsFs(), logger: logger},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SnapshotStore = (*Store)(nil)

func (s *Store) Save(ctx context.Context, location string, inventory domain.Inventory) error {
	loc, err := ParseLocation(location)
	if err != nil {
		return err
	}
	data, err := Encode(loc.Format(), inventory)
	if err != nil {
		return err
	}

	if loc.IsS3() {
		objects, err := s.objectStore(loc)
		if err != nil {
			return err
		}
		err = objects.Put(ctx, loc.Bucket, loc.Key, data, loc.Format().ContentType())
		if err != nil {
			return err
		}
	} else if err := s.files.write(ctx, loc.Path, data); err != nil {
		return err
	}

	s.logger.Infof(ctx, "Saved snapshot with %d resources to %s", inventory.Len(), loc)
	return nil
}

func (s *Store) Load(ctx context.Context, location string) (domain.Inventory, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return domain.Inventory{}, err
	}

	var data []byte
	if loc.IsS3() {
		objects, err := s.objectStore(loc)
		if err != nil {
			return domain.Inventory{}, err
		}
		if data, err = objects.Get(ctx, loc.Bucket, loc.Key); err != nil {
			return domain.Inventory{}, err
		}
	} else if data, err = s.files.read(ctx, loc.Path); err != nil {
		return domain.Inventory{}, err
	}

	inv, err := Decode(loc.Format(), data)
	if err != nil {
		return domain.Inventory{}, errors.Annotate(err, errors.CodeSnapshotCorrupt,
			fmt.Sprintf("snapshot %s is corrupt", loc))
	}
	s.logger.Debugf(ctx, "Loaded snapshot %s with %d resources", loc, inv.Len())
	return inv, nil
}

func (s *Store) objectStore(loc Location) (ObjectStore, error) {
	if s.objects == nil {
		return nil, errors.NewUserFacing(errors.CodeInvalidLocation,
			fmt.Sprintf("S3 snapshot location %s is not supported in this run", loc),
			"Use a local file path, or configure AWS access for S3 snapshots.")
	}
	return s.objects, nil
}
