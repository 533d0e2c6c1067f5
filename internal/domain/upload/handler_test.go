package upload

import (
	"bytes"
	"encoding/json"
	"image/color"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"

	pkgimaging "github.com/supermom/supermom-api/internal/pkg/imaging"
	"github.com/supermom/supermom-api/internal/pkg/storage"
)

func newTestHandler(t *testing.T, maxConcurrent int) *Handler {
	t.Helper()
	uploads, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatal(err)
	}
	results, err := storage.NewLocalStorage(t.TempDir(), "/results")
	if err != nil {
		t.Fatal(err)
	}
	processor := pkgimaging.NewProcessor(pkgimaging.DefaultConfig())
	return NewHandler(uploads, results, processor, NewLimiter(maxConcurrent))
}

func multipartPhoto(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()

	img := imaging.New(100, 100, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	var jpegBuf bytes.Buffer
	if err := imaging.Encode(&jpegBuf, img, imaging.JPEG); err != nil {
		t.Fatal(err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(jpegBuf.Bytes())
	w.Close()

	return &body, w.FormDataContentType()
}

func TestUploadStoresFile(t *testing.T) {
	h := newTestHandler(t, 5)

	body, contentType := multipartPhoto(t, "image", "mom.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			File UploadedFile `json:"file"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Data.File.OriginalName != "mom.jpg" {
		t.Errorf("original name = %q", resp.Data.File.OriginalName)
	}
	if resp.Data.File.Filename == "mom.jpg" {
		t.Error("stored filename must be randomized")
	}
	if !h.uploads.Exists(resp.Data.File.Filename) {
		t.Error("stored file missing")
	}
}

func TestUploadRejectsWrongField(t *testing.T) {
	h := newTestHandler(t, 5)

	body, contentType := multipartPhoto(t, "photo", "mom.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadRejectsBadExtension(t *testing.T) {
	h := newTestHandler(t, 5)

	body, contentType := multipartPhoto(t, "image", "mom.gif")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadBusyServer(t *testing.T) {
	h := newTestHandler(t, 1)

	// Hold the only slot
	release, ok := h.limiter.TryAcquire()
	if !ok {
		t.Fatal("could not take the slot")
	}
	defer release()

	body, contentType := multipartPhoto(t, "image", "mom.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestListUploadsEmpty(t *testing.T) {
	h := newTestHandler(t, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/uploads", nil)
	rec := httptest.NewRecorder()

	h.ListUploads(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Data.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Data.Count)
	}
}
