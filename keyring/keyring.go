// Package keyring supplies the symmetric key material for the blob store.
package keyring

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/hkdf"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
)

// KeySize is the length of every key handed out by a Provider.
const KeySize = 32

// blobKeyInfo separates blob encryption keys from any other use of the
// same master key. Changing it invalidates every stored blob.
var blobKeyInfo = []byte("lockey.blob.v1")

// Key is one named key. ID is stored next to each ciphertext so older
// blobs stay readable after the active key changes.
type Key struct {
	ID       string
	Material []byte
}

// Provider resolves keys on demand. Implementations must report missing or
// malformed material as ErrKeyUnavailable.
type Provider interface {
	ActiveKey(ctx context.Context) (Key, error)
	KeyByID(ctx context.Context, id string) (Key, error)
}

// StaticProvider serves base64 master keys from configuration. Decoding is
// deferred to the first call so a bad key only breaks the blob store.
type StaticProvider struct {
	activeID string
	encoded  map[string]string

	once sync.Once
	keys map[string]Key
	err  error
}

var _ Provider = (*StaticProvider)(nil)

func NewStaticProvider(activeID string, encoded map[string]string) *StaticProvider {
	return &StaticProvider{activeID: activeID, encoded: encoded}
}

func (p *StaticProvider) load() {
	p.keys = make(map[string]Key, len(p.encoded))
	for id, enc := range p.encoded {
		master, err := base64.StdEncoding.DecodeString(strings.TrimSpace(enc))
		if err != nil || len(master) != KeySize {
			// skip here; lookup of this id reports the key as unavailable
			continue
		}
		derived, err := DeriveBlobKey(master)
		if err != nil {
			p.err = err
			return
		}
		p.keys[id] = Key{ID: id, Material: derived}
	}
}

func (p *StaticProvider) ActiveKey(ctx context.Context) (Key, error) {
	return p.KeyByID(ctx, p.activeID)
}

func (p *StaticProvider) KeyByID(_ context.Context, id string) (Key, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return Key{}, fmt.Errorf("%w: %v", lockey_errors.ErrKeyUnavailable, p.err)
	}
	if id == "" {
		return Key{}, fmt.Errorf("%w: no key id configured", lockey_errors.ErrKeyUnavailable)
	}
	k, ok := p.keys[id]
	if !ok {
		return Key{}, fmt.Errorf("%w: key %q missing or not %d base64 bytes", lockey_errors.ErrKeyUnavailable, id, KeySize)
	}
	return k, nil
}

// DeriveBlobKey expands a master key into the blob encryption key with
// HKDF-SHA256.
func DeriveBlobKey(master []byte) ([]byte, error) {
	out := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, blobKeyInfo), out); err != nil {
		return nil, fmt.Errorf("deriving blob key: %w", err)
	}
	return out, nil
}

// GenerateMasterKey returns a fresh random master key, base64 encoded.
func GenerateMasterKey() (string, error) {
	buf := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generating key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
