package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/afs"
	"golang.org/x/oauth2"
)

const fileMode = 0o600

// FileStore persists the token pair as a JSON object through afs, so any afs
// URL works (local path, file://, mem://). Reads are served from memory.
type FileStore struct {
	mu    sync.RWMutex
	fs    afs.Service
	URL   string
	token *oauth2.Token
}

// NewFileStore creates a Store that persists tokens at the given URL and
// loads any pair already stored there.
func NewFileStore(URL string) (*FileStore, error) {
	ret := &FileStore{fs: afs.New(), URL: URL}
	if err := ret.load(context.Background()); err != nil {
		return nil, err
	}
	return ret, nil
}

func (f *FileStore) LookupAccessToken() (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.token == nil {
		return "", false
	}
	return f.token.AccessToken, true
}

func (f *FileStore) LookupRefreshToken() (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.token == nil {
		return "", false
	}
	return f.token.RefreshToken, true
}

func (f *FileStore) SetTokens(access, refresh string) error {
	if access == "" || refresh == "" {
		return ErrIncompletePair
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.save(context.Background(), access, refresh); err != nil {
		return err
	}
	f.token = newToken(access, refresh)
	return nil
}

func (f *FileStore) ClearTokens() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = nil
	ctx := context.Background()
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return &Error{Op: OpStat, Key: f.URL, Err: err}
	}
	if !ok {
		return nil
	}
	if err = f.fs.Delete(ctx, f.URL); err != nil {
		return &Error{Op: OpDelete, Key: f.URL, Err: err}
	}
	return nil
}

func (f *FileStore) IsAuthenticated() bool {
	_, ok := f.LookupAccessToken()
	return ok
}

// ---- persistence ----

func (f *FileStore) save(ctx context.Context, access, refresh string) error {
	snapshot := map[string]string{
		AccessTokenKey:  access,
		RefreshTokenKey: refresh,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return &Error{Op: "encode", Key: f.URL, Err: err}
	}
	if err = f.fs.Upload(ctx, f.URL, fileMode, bytes.NewReader(data)); err != nil {
		return &Error{Op: "upload", Key: f.URL, Err: err}
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return &Error{Op: OpStat, Key: f.URL, Err: err}
	}
	if !ok {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return &Error{Op: "download", Key: f.URL, Err: err}
	}
	snapshot := map[string]string{}
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return &Error{Op: "decode", Key: f.URL, Err: err}
	}
	access, refresh := snapshot[AccessTokenKey], snapshot[RefreshTokenKey]
	if access == "" || refresh == "" {
		// a dangling token is treated as no session
		return nil
	}
	f.token = newToken(access, refresh)
	return nil
}
