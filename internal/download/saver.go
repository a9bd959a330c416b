package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DirSaver writes exported files into a local directory.
type DirSaver struct {
	dir string
}

func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{dir: dir}
}

// Save writes data to <dir>/<base of filename>, creating dir if needed.
func (s *DirSaver) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid file name %q", filename)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	slog.Info("saved export", "path", path, "bytes", len(data))

	return nil
}

// Path returns where filename ends up once saved.
func (s *DirSaver) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
