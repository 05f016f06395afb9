// Package fetch downloads resumes from cloud-storage share links. It
// rewrites Google Drive, Dropbox and OneDrive viewer URLs into direct
// download URLs and hands the bytes to the screening pipeline.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/halee5027/RecruitNova/internal/shared/telemetry"
)

const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxFetchSize = 20 << 20 // 20MB
)

// ErrInvalidURL indicates a URL the fetcher refuses to download.
var ErrInvalidURL = errors.New("invalid fetch url")

// Result is the structured outcome of one fetch. Errors are data, not
// panics: a failed fetch carries its message so batch callers can record
// per-item failures.
type Result struct {
	Status   string `json:"status"` // "success" or "error"
	Message  string `json:"message,omitempty"`
	Content  []byte `json:"-"`
	Filename string `json:"filename,omitempty"`
	Size     int    `json:"size,omitempty"`
}

// Fetcher downloads documents over HTTP. Client and Now are injectable for
// tests; nil values fall back to sane defaults.
type Fetcher struct {
	Client *http.Client
	Now    func() time.Time
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (f *Fetcher) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// FromURL detects the source from the host and fetches the document.
func (f *Fetcher) FromURL(ctx context.Context, rawURL string) Result {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return errResult("Empty URL")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return errResult("URL must start with http:// or https://")
	}

	switch {
	case strings.Contains(rawURL, "drive.google.com"):
		return f.fromGoogleDrive(ctx, rawURL)
	case strings.Contains(rawURL, "dropbox.com"):
		return f.fromDropbox(ctx, rawURL)
	case strings.Contains(rawURL, "onedrive.live.com"), strings.Contains(rawURL, "sharepoint.com"):
		return f.fromOneDrive(ctx, rawURL)
	default:
		return f.download(ctx, rawURL, rawURL, "")
	}
}

func (f *Fetcher) fromGoogleDrive(ctx context.Context, rawURL string) Result {
	fileID := driveFileID(rawURL)
	if fileID == "" {
		return errResult("Google Drive error: cannot extract file ID")
	}
	downloadURL := "https://drive.google.com/uc?export=download&id=" + url.QueryEscape(fileID)
	return f.download(ctx, downloadURL, rawURL, "Google Drive error: ")
}

func (f *Fetcher) fromDropbox(ctx context.Context, rawURL string) Result {
	downloadURL := rawURL
	switch {
	case strings.Contains(rawURL, "?dl=0"):
		downloadURL = strings.Replace(rawURL, "?dl=0", "?dl=1", 1)
	case !strings.Contains(rawURL, "?dl=1"):
		downloadURL = rawURL + "?dl=1"
	}
	return f.download(ctx, downloadURL, rawURL, "Dropbox error: ")
}

func (f *Fetcher) fromOneDrive(ctx context.Context, rawURL string) Result {
	downloadURL := rawURL + "?download=1"
	if i := strings.Index(rawURL, "?e="); i >= 0 {
		downloadURL = rawURL[:i] + "?download=1"
	}
	return f.download(ctx, downloadURL, rawURL, "OneDrive error: ")
}

// download performs the HTTP GET and names the file after the original URL
// and the response content type.
func (f *Fetcher) download(ctx context.Context, downloadURL, originalURL, errPrefix string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return errResult(errPrefix + err.Error())
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client().Do(req)
	if err != nil {
		return errResult(errPrefix + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errResult(fmt.Sprintf("%sunexpected status %d", errPrefix, resp.StatusCode))
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return errResult(errPrefix + err.Error())
	}

	ext := FileExtension(originalURL, resp.Header.Get("Content-Type"))
	filename := "resume_" + f.now().Format("20060102_150405") + ext

	telemetry.Info("resume fetched", map[string]any{
		"url":      originalURL,
		"filename": filename,
		"size":     len(content),
	})

	return Result{
		Status:   "success",
		Content:  content,
		Filename: filename,
		Size:     len(content),
	}
}

// FileExtension infers a document extension from the URL path, falling back
// to the content type, then to ".pdf".
func FileExtension(rawURL, contentType string) string {
	path := ""
	if u, err := url.Parse(rawURL); err == nil {
		path = strings.ToLower(u.Path)
	}
	for _, ext := range []string{".pdf", ".docx", ".doc", ".txt"} {
		if strings.HasSuffix(path, ext) {
			return ext
		}
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "pdf"):
		return ".pdf"
	case strings.Contains(ct, "word"), strings.Contains(ct, "docx"):
		return ".docx"
	case strings.Contains(ct, "text"):
		return ".txt"
	}
	return ".pdf"
}

// ValidateContent checks whether fetched bytes look like a usable document.
func ValidateContent(content []byte) (bool, string) {
	if len(content) < 100 {
		return false, "File too small"
	}
	if strings.HasPrefix(string(content[:4]), "%PDF") {
		return true, "Valid PDF"
	}
	if strings.HasPrefix(string(content[:2]), "PK") {
		return true, "Valid DOCX"
	}
	if utf8.Valid(content) && len(content) > 200 {
		return true, "Valid text"
	}
	return false, "Invalid format"
}

// driveFileID pulls the file ID out of either share-URL shape.
func driveFileID(rawURL string) string {
	if i := strings.Index(rawURL, "/d/"); i >= 0 {
		rest := rawURL[i+3:]
		if j := strings.IndexAny(rest, "/?"); j >= 0 {
			return rest[:j]
		}
		return rest
	}
	if u, err := url.Parse(rawURL); err == nil {
		if id := u.Query().Get("id"); id != "" {
			return id
		}
	}
	return ""
}

func errResult(message string) Result {
	return Result{Status: "error", Message: message}
}
