package archive

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ErrUnsupported is returned for archive types the reader does not handle.
var ErrUnsupported = errors.New("unsupported archive type")

var zipExtensions = map[string]struct{}{
	".cbz": {},
	".zip": {},
}

var imageEntryRE = regexp.MustCompile(`(?i)\.(avif|bmp|gif|jpe?g|png|tiff?|webp)$`)

// Entry describes one archive member.
type Entry struct {
	Name string
	Size int64
}

// Reader provides read access to a comic archive.
type Reader struct {
	path string
	rc   *zip.ReadCloser
}

// Open opens a comic archive for reading. An empty path or an unsupported
// extension is a caller error and fails immediately.
func Open(archivePath string) (*Reader, error) {
	if strings.TrimSpace(archivePath) == "" {
		return nil, errors.New("archive path required")
	}
	ext := strings.ToLower(path.Ext(archivePath))
	if _, ok := zipExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	rc, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	return &Reader{path: archivePath, rc: rc}, nil
}

// Path returns the archive's filesystem path.
func (r *Reader) Path() string { return r.path }

// Entries lists the archive members in stored order.
func (r *Reader) Entries() []Entry {
	out := make([]Entry, 0, len(r.rc.File))
	for _, f := range r.rc.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		out = append(out, Entry{Name: f.Name, Size: int64(f.UncompressedSize64)})
	}
	return out
}

// ImageEntries lists image members sorted by name; their order defines
// page indexes.
func (r *Reader) ImageEntries() []Entry {
	var out []Entry
	for _, entry := range r.Entries() {
		if imageEntryRE.MatchString(entry.Name) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Comment returns the archive comment, where ComicBookInfo metadata lives.
func (r *Reader) Comment() string {
	return r.rc.Comment
}

// Read returns one member's contents.
func (r *Reader) Read(name string) ([]byte, error) {
	for _, f := range r.rc.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open entry %s: %w", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, fmt.Errorf("read entry %s: %w", name, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", name, r.path)
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	if r.rc == nil {
		return nil
	}
	err := r.rc.Close()
	r.rc = nil
	return err
}

// IsImageName reports whether an entry name looks like a page image.
func IsImageName(name string) bool {
	return imageEntryRE.MatchString(name)
}
