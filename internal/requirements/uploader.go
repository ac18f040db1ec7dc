package requirements

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Yoshida28/sekkot/internal/shared/storage/object"
)

const (
	uploadKeyPrefix = "uploads/"
	// cacheControl is applied to every stored object so browsers revisit
	// the public URL at most once an hour.
	cacheControl = "max-age=3600"
)

// Uploader owns the upload lifecycle. At most one upload per owner may be
// in flight at any time; a second attempt is rejected synchronously with
// ErrUploadInFlight rather than queued.
type Uploader struct {
	Store object.ObjectStore

	// Started and Finished are optional hooks fired around each accepted
	// upload, before the first storage call and after the last.
	Started  func()
	Finished func(err error)

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewUploader builds an Uploader over the given store.
func NewUploader(store object.ObjectStore) *Uploader {
	return &Uploader{
		Store:    store,
		inFlight: make(map[string]struct{}),
	}
}

// InFlight reports whether owner currently has an unresolved upload.
func (u *Uploader) InFlight(owner string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, busy := u.inFlight[owner]
	return busy
}

// Upload stores the file under a fresh random key and resolves its public
// address. On failure nothing is staged and the caller may retry with the
// same file.
func (u *Uploader) Upload(ctx context.Context, owner, fileName string, r io.Reader, size int64) (UploadResult, error) {
	u.mu.Lock()
	if _, busy := u.inFlight[owner]; busy {
		u.mu.Unlock()
		return UploadResult{}, ErrUploadInFlight
	}
	u.inFlight[owner] = struct{}{}
	u.mu.Unlock()

	if u.Started != nil {
		u.Started()
	}

	result, err := u.put(ctx, fileName, r, size)

	u.mu.Lock()
	delete(u.inFlight, owner)
	u.mu.Unlock()

	if u.Finished != nil {
		u.Finished(err)
	}
	return result, err
}

func (u *Uploader) put(ctx context.Context, fileName string, r io.Reader, size int64) (UploadResult, error) {
	ext := strings.ToLower(path.Ext(fileName))
	key := uploadKeyPrefix + uuid.NewString() + ext

	// Sniff the first 512 bytes for the content type.
	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return UploadResult{}, readErr
	}
	contentType := http.DetectContentType(sniff[:n])
	body := io.MultiReader(bytes.NewReader(sniff[:n]), r)

	err := u.Store.Put(ctx, key, body, size, object.PutOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
		NoOverwrite:  true,
	})
	if err != nil {
		return UploadResult{}, err
	}

	return UploadResult{
		URL:      u.Store.PublicURL(key),
		FileName: fileName,
		Key:      key,
	}, nil
}
