package receipt

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
)

// attachment is the FileSaver used by the API: the export lands in the
// response body instead of on disk.
type attachment struct {
	name string
	data []byte
}

func (a *attachment) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.name = filename
	a.data = data

	return nil
}

func (a *attachment) write(w http.ResponseWriter) error {
	contentType := mime.TypeByExtension(filepath.Ext(a.name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.name))
	w.Header().Set("Content-Length", strconv.Itoa(len(a.data)))

	_, err := w.Write(a.data)

	return err
}
