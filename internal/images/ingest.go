// Package images converts uploaded photo files into inline data URLs the
// vehicle records embed directly, so no media files live on disk.
package images

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxBatch is the most files one upload may contribute; extra selections are
// silently dropped, not an error.
const MaxBatch = 10

// MaxFileSize caps a single photo so one upload cannot exhaust memory.
const MaxFileSize = 5 << 20 // 5 MiB

// IngestBatch converts the selected files into data URLs, in order. The
// batch is atomic: any single failure fails the whole batch and no partial
// result is returned, so a half-converted selection can never reach a draft.
func IngestBatch(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxBatch {
		files = files[:MaxBatch]
	}
	out := make([]string, 0, len(files))
	for _, fh := range files {
		u, err := dataURL(fh)
		if err != nil {
			return nil, fmt.Errorf("convert %q: %w", fh.Filename, err)
		}
		out = append(out, u)
	}
	return out, nil
}

func dataURL(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", fmt.Errorf("file exceeds %d bytes", int64(MaxFileSize))
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return "", err
	}
	if len(raw) > MaxFileSize {
		return "", fmt.Errorf("file exceeds %d bytes", int64(MaxFileSize))
	}

	// Sniff the real content type rather than trusting the upload header.
	mime := http.DetectContentType(raw)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
