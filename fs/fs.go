// Package fs resolves prompt and image assets from local directories.
//
// It is the only component that checks the filesystem: the request config
// builder records whatever identifiers it is handed, so everything here
// fails loudly, with error messages that enumerate what is available.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/wardrobe"
)

// Source implements [wardrobe.AssetSource] over the local filesystem.
type Source struct{}

// Interface compliance check.
var _ wardrobe.AssetSource = Source{}

// ResolveAssets delegates to [ResolveAssets].
func (Source) ResolveAssets(referenceDir, targetDir string, referenceNames []string, targetName string) (wardrobe.AssetSet, error) {
	return ResolveAssets(referenceDir, targetDir, referenceNames, targetName)
}

// ResolveReferences delegates to [ResolveReferences].
func (Source) ResolveReferences(dir string, names []string) ([]string, error) {
	return ResolveReferences(dir, names)
}

// LoadPrompt delegates to [LoadPrompt].
func (Source) LoadPrompt(dir, name string) (string, error) {
	return LoadPrompt(dir, name)
}

// ReadImages delegates to [ReadImages].
func (Source) ReadImages(paths []string) ([]wardrobe.ImageInput, error) {
	return ReadImages(paths)
}

// ResolveAssets validates and resolves reference imagery and the edit target
// against their directories (which may be the same directory).
//
// Explicit reference names are resolved in the order given. When none are
// given, every file in referenceDir except the target is used, sorted by
// name for determinism. Zero resolved references, more than
// [wardrobe.MaxReferenceImages], or a reference that canonicalizes to the
// target path are rejected.
func ResolveAssets(referenceDir, targetDir string, referenceNames []string, targetName string) (wardrobe.AssetSet, error) {
	if err := requireDir(referenceDir, "reference images directory"); err != nil {
		return wardrobe.AssetSet{}, err
	}
	if err := requireDir(targetDir, "target images directory"); err != nil {
		return wardrobe.AssetSet{}, err
	}
	if targetName == "" {
		return wardrobe.AssetSet{}, fmt.Errorf("target name is empty; set it to the filename of the photo to edit: %w", wardrobe.ErrInvalidArgument)
	}

	targetPath := filepath.Join(targetDir, targetName)
	if !fileExists(targetPath) {
		return wardrobe.AssetSet{}, fmt.Errorf("target image %q was not found in %q (available files: %s): %w",
			targetName, targetDir, availableFiles(targetDir), wardrobe.ErrNotFound)
	}
	canonTarget := canonical(targetPath)

	var references []string
	if len(referenceNames) > 0 {
		for _, name := range referenceNames {
			candidate := filepath.Join(referenceDir, name)
			if !fileExists(candidate) {
				return wardrobe.AssetSet{}, fmt.Errorf("reference image %q was not found in %q: %w",
					name, referenceDir, wardrobe.ErrNotFound)
			}
			if canonical(candidate) == canonTarget {
				return wardrobe.AssetSet{}, fmt.Errorf("reference image %q duplicates the target image: %w",
					name, wardrobe.ErrInvalidArgument)
			}
			references = append(references, candidate)
		}
	} else {
		entries, err := os.ReadDir(referenceDir)
		if err != nil {
			return wardrobe.AssetSet{}, fmt.Errorf("list reference images: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			candidate := filepath.Join(referenceDir, entry.Name())
			if canonical(candidate) == canonTarget {
				continue
			}
			references = append(references, candidate)
		}
		sort.Strings(references)
	}

	if len(references) == 0 {
		return wardrobe.AssetSet{}, fmt.Errorf("no reference images were resolved; name at least one or keep other files in %q: %w",
			referenceDir, wardrobe.ErrInvalidArgument)
	}
	if len(references) > wardrobe.MaxReferenceImages {
		return wardrobe.AssetSet{}, fmt.Errorf("resolved %d reference images, at most %d are supported: %w",
			len(references), wardrobe.MaxReferenceImages, wardrobe.ErrInvalidArgument)
	}

	return wardrobe.AssetSet{References: references, Target: targetPath}, nil
}

// ResolveReferences resolves an explicit list of reference names against a
// directory. Unlike ResolveAssets it has no target to exclude and no upper
// count limit. Extraction runs slice the result themselves.
func ResolveReferences(dir string, names []string) ([]string, error) {
	if err := requireDir(dir, "reference images directory"); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("configure at least one reference image: %w", wardrobe.ErrInvalidArgument)
	}

	resolved := make([]string, 0, len(names))
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if !fileExists(candidate) {
			return nil, fmt.Errorf("reference image %q was not found in %q: %w", name, dir, wardrobe.ErrNotFound)
		}
		resolved = append(resolved, candidate)
	}
	return resolved, nil
}

func requireDir(dir, label string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s %q does not exist: %w", label, dir, wardrobe.ErrNotFound)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// canonical resolves symlinks where possible and falls back to the absolute
// path. Aliases that do not normalize identically can still slip past the
// duplicate check; callers compare canonical forms, not inodes.
func canonical(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// availableFiles enumerates the files in dir for error messages.
func availableFiles(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "<none>"
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "<none>"
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
