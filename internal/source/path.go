package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// ResolveWithin maps name onto a path inside dir. Relative names are joined
// to dir; absolute names are accepted only when they already lie inside it.
// Symlinks are followed before the check, so a link pointing out of dir is
// refused as well.
func ResolveWithin(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(dir) == "" {
		return "", apperrors.NewCustomError(apperrors.ErrPermissionDenied, "no catalog directory is configured")
	}
	if name == "" {
		return "", apperrors.NewCustomError(apperrors.ErrSourceUnavailable, "file name cannot be empty")
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve catalog directory: %w", err)
	}

	target := name
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	target = filepath.Clean(target)

	if !inside(root, target) {
		return "", outsideDir(name)
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		// a missing directory holds no files; ReadLines reports the miss
		return target, nil
	}
	realTarget, err := filepath.EvalSymlinks(target)
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, os.ErrPermission):
		return target, nil
	case err != nil:
		return "", fmt.Errorf("resolve %q: %w", name, err)
	}
	if !inside(realRoot, realTarget) {
		return "", outsideDir(name)
	}
	return target, nil
}

func inside(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

func outsideDir(name string) error {
	return apperrors.NewCustomError(apperrors.ErrPermissionDenied,
		fmt.Sprintf("'%s' is outside the catalog directory", name))
}
