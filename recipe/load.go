package recipe

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"cssel/archive"
	"cssel/codec"
)

// IsRecipeFile reports whether name has recipe file extension.
func IsRecipeFile(name string) bool {
	_, err := codec.FormatFromPath(name)
	return err == nil
}

// Parse decodes recipe data, format is selected by source extension.
func Parse(source string, data []byte) (*Recipe, error) {
	f, err := codec.FormatFromPath(source)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", source, err)
	}
	r, err := codec.Decode[Recipe](f, data)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", source, err)
	}
	r.Source = source
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("recipe %s: %w", source, err)
	}
	return &r, nil
}

// Load reads recipes from a file, a directory (recursively) or a zip
// archive. Recipes from directories and archives are returned in natural
// order of their paths.
func Load(path string) ([]*Recipe, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("unable to access recipe source: %w", err)
	}

	switch {
	case info.IsDir():
		return loadDir(path)
	case strings.EqualFold(filepath.Ext(path), ".zip"):
		return loadArchive(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read recipe: %w", err)
		}
		r, err := Parse(path, data)
		if err != nil {
			return nil, err
		}
		return []*Recipe{r}, nil
	}
}

func loadDir(dir string) ([]*Recipe, error) {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && IsRecipeFile(path) {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk recipe directory: %w", err)
	}
	sort.Sort(natural.StringSlice(names))

	recipes := make([]*Recipe, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("unable to read recipe: %w", err)
		}
		r, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func loadArchive(path string) ([]*Recipe, error) {
	var recipes []*Recipe
	err := archive.Walk(path, IsRecipeFile, func(name string, data []byte) error {
		r, err := Parse(name, data)
		if err != nil {
			return err
		}
		recipes = append(recipes, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to load recipes from %s: %w", path, err)
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		return natural.Less(recipes[i].Source, recipes[j].Source)
	})
	return recipes, nil
}
