package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path the upload directory is served under.
const PublicPrefix = "/uploads/"

var (
	ErrTooLarge  = errs.New("file is too large")
	ErrEmptyFile = errs.New("file is empty")
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

const maxCreateAttempts = 5

type Stored struct {
	URL       string
	MediaType portfolio.MediaType
}

type Storage struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

func NewStorage(cfg config.UploadConfig) (*Storage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrapf(err, "failed to create upload dir %s", cfg.Dir)
	}
	return &Storage{dir: cfg.Dir, maxBytes: cfg.MaxBytes, now: time.Now}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// Save writes the file as <sanitized-base>-<unixmillis><ext>, adding a
// random suffix when that name is taken.
func (s *Storage) Save(fh *multipart.FileHeader) (*Stored, error) {
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return nil, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	name, dst, err := s.create(FileName(fh.Filename, s.now()))
	if err != nil {
		return nil, err
	}

	var reader io.Reader = src
	if s.maxBytes > 0 {
		reader = io.LimitReader(src, s.maxBytes+1)
	}
	written, err := io.Copy(dst, reader)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && s.maxBytes > 0 && written > s.maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		if errs.Is(err, ErrTooLarge) {
			return nil, err
		}
		return nil, errs.Wrap(err, "failed to store upload")
	}

	return &Stored{
		URL:       PublicPrefix + name,
		MediaType: portfolio.MediaTypeFromContentType(fh.Header.Get("Content-Type")),
	}, nil
}

// create opens name exclusively. Uploads landing in the same millisecond get
// a random suffix before the extension.
func (s *Storage) create(name string) (string, *os.File, error) {
	candidate := name
	for range maxCreateAttempts {
		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		if err == nil {
			return candidate, f, nil
		}
		if !os.IsExist(err) {
			return "", nil, errs.Wrap(err, "failed to create upload file")
		}
		ext := filepath.Ext(name)
		candidate = strings.TrimSuffix(name, ext) + "-" + uuid.NewString()[:8] + ext
	}
	return "", nil, errs.Newf("failed to find a free upload name for %s", name)
}

func FileName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "_")
	if base == "" {
		base = "file"
	}
	if len(base) > 64 {
		base = base[:64]
	}
	return base + "-" + strconv.FormatInt(now.UnixMilli(), 10) + ext
}
