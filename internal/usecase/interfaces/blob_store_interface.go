package interfaces

import "context"

// BlobFile is a document stored in the external blob directory.
type BlobFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// IBlobStore lists and downloads the permit/registration PDFs.
type IBlobStore interface {
	ListPDFs(ctx context.Context) ([]BlobFile, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}
