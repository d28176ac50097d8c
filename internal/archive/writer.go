package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
)

// Rewrite assembles a new archive with the given sidecar files and comment
// replacing any previous versions, keeping every other member. The target
// is locked for the duration and replaced atomically.
func Rewrite(archivePath, comment string, sidecars map[string][]byte) error {
	lock := flock.New(archivePath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock archive %s: %w", archivePath, err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	reader, err := Open(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	dir := filepath.Dir(archivePath)
	tempPath := filepath.Join(dir, "."+filepath.Base(archivePath)+"."+uuid.NewString()+".tmp")
	out, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	defer os.Remove(tempPath)

	if err := writeArchive(out, reader, comment, sidecars); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close temp archive: %w", err)
	}
	if err := reader.Close(); err != nil {
		return fmt.Errorf("close source archive: %w", err)
	}
	if err := os.Rename(tempPath, archivePath); err != nil {
		return fmt.Errorf("replace archive %s: %w", archivePath, err)
	}
	return nil
}

func writeArchive(out *os.File, reader *Reader, comment string, sidecars map[string][]byte) error {
	w := zip.NewWriter(out)
	if comment != "" {
		if err := w.SetComment(comment); err != nil {
			return fmt.Errorf("set archive comment: %w", err)
		}
	}

	replaced := make(map[string]struct{}, len(sidecars))
	for name := range sidecars {
		replaced[strings.ToLower(name)] = struct{}{}
	}

	for _, entry := range reader.Entries() {
		base := strings.ToLower(filepath.Base(entry.Name))
		if _, ok := replaced[base]; ok {
			continue
		}
		if err := copyEntry(w, reader, entry.Name); err != nil {
			return err
		}
	}
	for name, data := range sidecars {
		f, err := w.Create(name)
		if err != nil {
			return fmt.Errorf("create entry %s: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("write entry %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

func copyEntry(w *zip.Writer, reader *Reader, name string) error {
	data, err := reader.Read(name)
	if err != nil {
		return err
	}
	method := zip.Deflate
	if IsImageName(name) {
		// Page images are already compressed; recompressing wastes time.
		method = zip.Store
	}
	f, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: method})
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}
