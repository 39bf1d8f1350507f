package actions

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pknull/ccsessionctl/internal/session"
)

// ArchiveSession writes one session (transcript plus sibling directory) to a
// tar.gz in outputDir and returns the archive path. A failed write leaves no
// partial archive behind.
func ArchiveSession(s *session.Session, outputDir string) (string, error) {
	archivePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.tar.gz", s.Project, s.ID))

	err := writeArchive(archivePath, func(tw *tar.Writer) error {
		if err := addFile(tw, s.Path, filepath.Base(s.Path)); err != nil {
			return err
		}
		return addDirIfPresent(tw, s.DirPath(), filepath.Base(s.DirPath()))
	})
	if err != nil {
		return "", err
	}
	return archivePath, nil
}

// ArchiveSessions writes all sessions into a single tar.gz at outputPath,
// laid out as <project>/<id>.jsonl plus <project>/<id>/ for auxiliary files.
func ArchiveSessions(sessions []*session.Session, outputPath string) error {
	return writeArchive(outputPath, func(tw *tar.Writer) error {
		for _, s := range sessions {
			prefix := filepath.Join(s.Project, s.ID)
			if err := addFile(tw, s.Path, prefix+".jsonl"); err != nil {
				return err
			}
			if err := addDirIfPresent(tw, s.DirPath(), prefix); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeArchive creates a tar.gz at path, populates it via fill, and removes
// the file again on any failure.
func writeArchive(path string, fill func(*tar.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", path, err)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	err = fill(tw)
	if err == nil {
		err = tw.Close()
	}
	if err == nil {
		err = gz.Close()
	}
	if err == nil {
		err = f.Close()
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return nil
}

func addFile(tw *tar.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	_, err = io.Copy(tw, f)
	return err
}

func addDirIfPresent(tw *tar.Writer, dirPath, name string) error {
	info, err := os.Stat(dirPath)
	if err != nil || !info.IsDir() {
		return nil
	}

	return filepath.Walk(dirPath, func(path string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dirPath, path)
		if err != nil {
			return err
		}
		return addFile(tw, path, filepath.Join(name, rel))
	})
}
