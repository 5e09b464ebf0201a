package utils

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader собирает настоящий multipart.FileHeader через форму.
func makeFileHeader(t *testing.T, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	reader := multipart.NewReader(&buf, mw.Boundary())
	form, err := reader.ReadForm(int64(size) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["image"][0]
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()

	fh := makeFileHeader(t, "Фото Блюда.JPG", "image/jpeg", 64)
	path, err := SaveImage(fh, dir)
	require.NoError(t, err)

	// публичный путь со случайным именем, расширение сохранено
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))
	assert.NotContains(t, path, "Фото")

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/uploads/")))
	require.NoError(t, err)
	assert.Len(t, data, 64)
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		filename    string
		contentType string
		want        error
	}{
		{name: "bad extension", filename: "malware.exe", contentType: "image/png", want: ErrImageType},
		{name: "bad content type", filename: "photo.png", contentType: "application/pdf", want: ErrImageType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fh := makeFileHeader(t, tc.filename, tc.contentType, 16)
			_, err := SaveImage(fh, dir)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries) // отклонённые файлы не оседают на диске
}

func TestSaveImage_RejectsOversize(t *testing.T) {
	fh := makeFileHeader(t, "big.png", "image/png", 128)
	fh.Size = MaxImageSize + 1 // не гоняем 5MB через буфер

	_, err := SaveImage(fh, t.TempDir())
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestDeleteImage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dish.png")
	require.NoError(t, os.WriteFile(file, []byte("img"), 0o644))

	DeleteImage(dir, "/uploads/dish.png")
	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))

	// повторное удаление и мусорные пути не паникуют
	DeleteImage(dir, "/uploads/dish.png")
	DeleteImage(dir, "")
	DeleteImage(dir, "/etc/passwd")
}
