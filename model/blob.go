// model/blob.go
package model

import "time"

// BlobRecord is one stored encrypted file. Records are immutable once written.
type BlobRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"filename"`
	Ciphertext []byte    `json:"-"`
	KeyID      string    `json:"key_id"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by"`
}

// BlobMetadata is what the uploader supplies alongside the content.
type BlobMetadata struct {
	UploadedBy string
}

// BlobContent is a decrypted file ready to hand to the transport layer.
type BlobContent struct {
	ID   string
	Name string
	Data []byte
}
