package snapshot

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/olusolaa/teardown-verifier/internal/errors"
)

const s3Scheme = "s3://"

// Location is a parsed snapshot address: a local path or an S3 object.
type Location struct {
	Raw    string
	Path   string
	Bucket string
	Key    string
}

func (l Location) IsS3() bool {
	return l.Bucket != ""
}

// Format picks the encoding from the file extension.
func (l Location) Format() Format {
	name := l.Path
	if l.IsS3() {
		name = l.Key
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (l Location) String() string {
	return l.Raw
}

// ParseLocation accepts "s3://bucket/key" or a filesystem path.
func ParseLocation(raw string) (Location, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Location{}, errors.NewUserFacing(errors.CodeInvalidLocation,
			"snapshot location cannot be empty",
			"Pass a file path or an s3://bucket/key location.")
	}
	if strings.HasPrefix(strings.ToLower(trimmed), s3Scheme) {
		rest := trimmed[len(s3Scheme):]
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Location{}, errors.NewUserFacing(errors.CodeInvalidLocation,
				fmt.Sprintf("invalid S3 snapshot location %q", raw),
				"Use the form s3://bucket/path/to/snapshot.json.")
		}
		return Location{Raw: trimmed, Bucket: bucket, Key: key}, nil
	}
	return Location{Raw: trimmed, Path: filepath.Clean(trimmed)}, nil
}
