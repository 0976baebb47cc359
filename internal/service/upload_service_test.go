package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/sugarloaf/bakehouse/internal/config"
)

// Minimal PNG header so MIME sniffing sees image/png.
var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	writer.Close()

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 10240)
	if err != nil {
		t.Fatalf("read form failed: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func newUploadService(t *testing.T) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Upload.Dir = dir
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedExtensions = []string{".png", ".jpg"}
	return NewUploadService(cfg), dir
}

func TestSaveFileStoresUnderScene(t *testing.T) {
	svc, dir := newUploadService(t)

	path, err := svc.SaveFile(buildFileHeader(t, "cake.png", pngBytes), "custom-cake")
	if err != nil {
		t.Fatalf("save file failed: %v", err)
	}

	pattern := regexp.MustCompile(`^/uploads/custom-cake/\d{4}/\d{2}/[0-9a-f-]{36}\.png$`)
	if !pattern.MatchString(path) {
		t.Fatalf("unexpected public path: %s", path)
	}

	onDisk := filepath.Join(dir, filepath.FromSlash(path[len("/uploads/"):]))
	if _, err := os.Stat(onDisk); err != nil {
		t.Fatalf("file not written to %s: %v", onDisk, err)
	}
}

func TestSaveFileRejectsBadExtension(t *testing.T) {
	svc, _ := newUploadService(t)
	if _, err := svc.SaveFile(buildFileHeader(t, "cake.exe", pngBytes), "custom-cake"); !errors.Is(err, ErrUploadType) {
		t.Fatalf("want ErrUploadType got %v", err)
	}
}

func TestSaveFileRejectsOversize(t *testing.T) {
	svc, _ := newUploadService(t)
	svc.cfg.Upload.MaxSize = 4
	if _, err := svc.SaveFile(buildFileHeader(t, "cake.png", pngBytes), "profile"); !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("want ErrUploadTooLarge got %v", err)
	}
}
