package snapshot

import (
	"context"
	stderrs "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

const snapshotFileMode = 0o644

// fileBackend keeps snapshots on a filesystem. Writes go to a temp file in
// the target directory which is then renamed over the target, so readers
// only ever see a complete old or a complete new snapshot.
type fileBackend struct {
	fs     afero.Fs
	logger ports.Logger
}

func (b *fileBackend) read(ctx context.Context, path string) ([]byte, error) {
	data, err := afero.ReadFile(b.fs, path)
	if err != nil {
		if stderrs.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapUserFacing(err, errors.CodeSnapshotNotFound,
				fmt.Sprintf("snapshot %s does not exist", path),
				"Check the path, or run 'capture' first to create the snapshot.")
		}
		return nil, errors.Wrap(err, errors.CodeSnapshotIO, fmt.Sprintf("failed to read snapshot %s", path))
	}
	return data, nil
}

func (b *fileBackend) write(ctx context.Context, path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(b.fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.CodeSnapshotIO,
			fmt.Sprintf("failed to create temporary file in %s", dir))
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := b.fs.Remove(tmpName); rmErr != nil && !stderrs.Is(rmErr, fs.ErrNotExist) {
				b.logger.Warnf(ctx, "Failed to remove temporary snapshot file %s: %v", tmpName, rmErr)
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.CodeSnapshotIO, fmt.Sprintf("failed to write snapshot %s", path))
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.CodeSnapshotIO, fmt.Sprintf("failed to sync snapshot %s", path))
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, errors.CodeSnapshotIO, fmt.Sprintf("failed to close snapshot %s", path))
	}
	if err = b.fs.Chmod(tmpName, snapshotFileMode); err != nil {
		return errors.Wrap(err, errors.CodeSnapshotIO, fmt.Sprintf("failed to set permissions on snapshot %s", path))
	}
	if err = b.fs.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, errors.CodeSnapshotIO, fmt.Sprintf("failed to move snapshot into place at %s", path))
	}
	return nil
}
