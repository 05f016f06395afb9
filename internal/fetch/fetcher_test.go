package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)
}

func TestFromURLRejectsBadInput(t *testing.T) {
	f := &Fetcher{}
	cases := []struct {
		url     string
		message string
	}{
		{"", "Empty URL"},
		{"   ", "Empty URL"},
		{"ftp://example.com/resume.pdf", "URL must start with http:// or https://"},
	}
	for _, c := range cases {
		got := f.FromURL(context.Background(), c.url)
		if got.Status != "error" || got.Message != c.message {
			t.Errorf("FromURL(%q) = %+v, want error %q", c.url, got, c.message)
		}
	}
}

func TestFromURLDirectDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
			t.Errorf("unexpected user agent %q", ua)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake body"))
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), Now: fixedNow}
	got := f.FromURL(context.Background(), srv.URL+"/files/resume.pdf")
	if got.Status != "success" {
		t.Fatalf("status = %q, message = %q", got.Status, got.Message)
	}
	if got.Filename != "resume_20260115_093000.pdf" {
		t.Errorf("filename = %q", got.Filename)
	}
	if got.Size != len("%PDF-1.4 fake body") {
		t.Errorf("size = %d", got.Size)
	}
}

func TestFromURLHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), Now: fixedNow}
	got := f.FromURL(context.Background(), srv.URL+"/missing.pdf")
	if got.Status != "error" || !strings.Contains(got.Message, "404") {
		t.Errorf("got %+v, want status-404 error", got)
	}
}

func TestDriveFileID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://drive.google.com/file/d/abc123/view?usp=sharing", "abc123"},
		{"https://drive.google.com/open?id=xyz789", "xyz789"},
		{"https://drive.google.com/file/d/abc123", "abc123"},
		{"https://drive.google.com/drive/folders/", ""},
	}
	for _, c := range cases {
		if got := driveFileID(c.url); got != c.want {
			t.Errorf("driveFileID(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestFromGoogleDriveNoID(t *testing.T) {
	f := &Fetcher{}
	got := f.FromURL(context.Background(), "https://drive.google.com/drive/folders/")
	if got.Status != "error" || !strings.Contains(got.Message, "file ID") {
		t.Errorf("got %+v", got)
	}
}

func TestDropboxURLRewrite(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.String()
		_, _ = w.Write([]byte("content"))
	}))
	defer srv.Close()

	// Call the provider path directly; FromURL would route on the host.
	f := &Fetcher{Client: srv.Client(), Now: fixedNow}
	got := f.fromDropbox(context.Background(), srv.URL+"/s/file.pdf?dl=0")
	if got.Status != "success" {
		t.Fatalf("status = %q, message = %q", got.Status, got.Message)
	}
	if !strings.HasSuffix(seen, "?dl=1") {
		t.Errorf("request url = %q, want ?dl=1 suffix", seen)
	}
}

func TestOneDriveURLRewrite(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.String()
		_, _ = w.Write([]byte("content"))
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), Now: fixedNow}
	got := f.fromOneDrive(context.Background(), srv.URL+"/share/doc?e=abc")
	if got.Status != "success" {
		t.Fatalf("status = %q, message = %q", got.Status, got.Message)
	}
	if !strings.HasSuffix(seen, "?download=1") {
		t.Errorf("request url = %q, want ?download=1 suffix", seen)
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		url, contentType, want string
	}{
		{"https://x.com/cv.pdf", "", ".pdf"},
		{"https://x.com/cv.docx", "", ".docx"},
		{"https://x.com/cv.doc", "", ".doc"},
		{"https://x.com/cv.txt", "", ".txt"},
		{"https://x.com/download", "application/pdf", ".pdf"},
		{"https://x.com/download", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
		{"https://x.com/download", "text/plain", ".txt"},
		{"https://x.com/download", "", ".pdf"},
	}
	for _, c := range cases {
		if got := FileExtension(c.url, c.contentType); got != c.want {
			t.Errorf("FileExtension(%q, %q) = %q, want %q", c.url, c.contentType, got, c.want)
		}
	}
}

func TestValidateContent(t *testing.T) {
	pad := strings.Repeat("x", 200)
	cases := []struct {
		name    string
		content []byte
		valid   bool
	}{
		{"too small", []byte("tiny"), false},
		{"pdf", []byte("%PDF-1.4" + pad), true},
		{"docx", []byte("PK\x03\x04" + pad), true},
		{"plain text", []byte(pad + pad), true},
		{"binary garbage", append([]byte{0xff, 0xfe, 0x00}, []byte(pad)...), false},
	}
	for _, c := range cases {
		valid, _ := ValidateContent(c.content)
		if valid != c.valid {
			t.Errorf("%s: valid = %v, want %v", c.name, valid, c.valid)
		}
	}
}
