package storage

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage は画像ファイルの保存を抽象化するインターフェース。
// ローカルファイルシステム実装と S3 互換 (MinIO) 実装がある。
type Storage interface {
	// Save はファイルを保存し、公開 URL を返す。
	// size may be -1 when unknown.
	Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) (url string, err error)
}

// GenerateKey builds an upload file name: a millisecond timestamp, a short random
// suffix and the original (lowercased) extension, e.g. "1720000000000-1a2b3c4d.jpg".
func GenerateKey(now time.Time, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if !validExt(ext) {
		ext = ""
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix + ext
}

// validExt rejects extensions that could smuggle path or query characters.
func validExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	for _, c := range ext[1:] {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
