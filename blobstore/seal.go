package blobstore

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
)

// FormatVersion is the first byte of every sealed blob. It is part of the
// additional authenticated data, so altering it fails authentication.
const FormatVersion byte = 0x01

// Overhead is version + XChaCha20-Poly1305 nonce + Poly1305 tag.
const Overhead = 1 + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead

// seal encrypts plaintext as
//
//	[version: 1][nonce: 24][ciphertext+tag: len(plaintext)+16]
//
// binding the record's blob ID, key ID and file name as AAD so neither a
// ciphertext copied onto another record nor a renamed record opens.
func seal(key []byte, rec aadFields, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating XChaCha20-Poly1305 cipher: %w", err)
	}

	var nonce [chacha20poly1305.NonceSizeX]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generating random nonce: %w", err)
	}

	out := make([]byte, 1+len(nonce), Overhead+len(plaintext))
	out[0] = FormatVersion
	copy(out[1:], nonce[:])
	return aead.Seal(out, nonce[:], plaintext, buildAAD(FormatVersion, rec)), nil
}

// open reverses seal. Any tampering, a wrong key or foreign record fields
// yield ErrDecryptionFailed and no plaintext.
func open(key []byte, rec aadFields, sealed []byte) ([]byte, error) {
	if len(sealed) < Overhead {
		return nil, fmt.Errorf("%w: blob shorter than %d bytes", lockey_errors.ErrDecryptionFailed, Overhead)
	}
	if sealed[0] != FormatVersion {
		return nil, fmt.Errorf("%w: unknown format version 0x%02x", lockey_errors.ErrDecryptionFailed, sealed[0])
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrKeyUnavailable, err)
	}

	nonce := sealed[1 : 1+chacha20poly1305.NonceSizeX]
	body := sealed[1+chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, body, buildAAD(sealed[0], rec))
	if err != nil {
		return nil, lockey_errors.ErrDecryptionFailed
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// aadFields are the record fields a ciphertext is bound to.
type aadFields struct {
	BlobID string
	KeyID  string
	Name   string
}

// buildAAD length-prefixes each field so no two field tuples encode alike.
func buildAAD(version byte, rec aadFields) []byte {
	aad := make([]byte, 0, 1+12+len(rec.BlobID)+len(rec.KeyID)+len(rec.Name))
	aad = append(aad, version)
	for _, field := range []string{rec.BlobID, rec.KeyID, rec.Name} {
		aad = binary.BigEndian.AppendUint32(aad, uint32(len(field)))
		aad = append(aad, field...)
	}
	return aad
}
