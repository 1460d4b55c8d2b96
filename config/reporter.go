package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"cssel/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare opens report archive. When configured destination could not be
// created report goes to temporary directory instead.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{items: make(map[string]item), file: f}, nil
}

// item is either a path on disk (file or directory) or a blob kept in memory.
type item struct {
	source string
	path   string
	stamp  time.Time
	data   []byte
}

// Report collects recipes, rendered stylesheets, configuration and logs into
// single zip archive to be attached to bug reports.
// Not safe for concurrent use.
type Report struct {
	items map[string]item
	file  *os.File
}

// Close writes the archive. Calling it on nil report is allowed and means no
// report was requested.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

// Name returns absolute name of the archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers path to file or directory. Content is read when report is
// closed so files still being written (logs) are captured completely.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.items[name]; exists && old.source != path {
		panic(fmt.Sprintf("report entry [%s] already refers to %s, cannot store %s", name, old.source, path))
	}
	it := item{source: path, path: path}
	if p, err := filepath.Abs(path); err == nil {
		it.path = p
	}
	r.items[name] = it
}

// StoreData keeps data in memory to be written into archive under requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.items[name]; exists {
		panic(fmt.Sprintf("report entry [%s] already exists", name))
	}
	r.items[name] = item{data: slices.Clone(data), stamp: time.Now()}
}

func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)
	defer arc.Close()

	names, manifest := prepareManifest(r.items)
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	for _, name := range names {
		it := r.items[name]
		if it.data != nil {
			if err := saveFile(arc, name, it.stamp, bytes.NewReader(it.data)); err != nil {
				return err
			}
			continue
		}

		info, err := os.Stat(it.path)
		if err != nil {
			// absent files are skipped, manifest still lists them
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if err := saveFromDisk(arc, name, it.path, info.ModTime()); err != nil {
				return err
			}
		case info.Mode().IsDir():
			if err := saveDir(arc, name, it.path); err != nil {
				return err
			}
		}
	}
	return nil
}

func prepareManifest(items map[string]item) ([]string, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	if len(items) == 0 {
		return nil, buf
	}

	now := time.Now()
	names := slices.Sorted(maps.Keys(items))
	for _, name := range names {
		it := items[name]
		if it.stamp.IsZero() {
			it.stamp = now
		}
		source := it.source
		if it.data != nil {
			source = fmt.Sprintf("<%d bytes>", len(it.data))
		}
		fmt.Fprintf(buf, "%s\t%s\t%s\n", it.stamp.UTC().Format(time.UnixDate), name, source)
	}
	return names, buf
}

func saveFromDisk(dst *zip.Writer, name, path string, t time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(dst, name, t, f)
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func saveDir(dst *zip.Writer, name, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return saveFromDisk(dst, filepath.ToSlash(filepath.Join(name, rel)), path, info.ModTime())
	})
}
