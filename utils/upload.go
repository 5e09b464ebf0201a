package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxImageSize = 5 << 20 // 5MB, как у исходного API

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var (
	ErrImageTooLarge = errors.New("image exceeds 5MB limit")
	ErrImageType     = errors.New("only images are allowed")
)

// SaveImage валидирует и сохраняет картинку под случайным именем,
// возвращает публичный путь вида /uploads/<uuid>.<ext>.
func SaveImage(fh *multipart.FileHeader, dir string) (string, error) {
	if fh.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", ErrImageType
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", ErrImageType
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// DeleteImage убирает файл по публичному пути. Best-effort: файла может
// уже не быть, это не ошибка.
func DeleteImage(dir, webPath string) {
	name := strings.TrimPrefix(webPath, "/uploads/")
	if name == "" || name == webPath {
		return
	}
	os.Remove(filepath.Join(dir, filepath.Base(name)))
}
