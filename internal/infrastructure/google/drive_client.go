package google

import (
	"context"
	"errors"
	"fmt"
	"io"

	"caza_backend/internal/usecase/interfaces"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var ErrFolderNotConfigured = errors.New("drive folder not configured")

// maxDownloadBytes caps a single PDF download.
const maxDownloadBytes = 20 << 20

// DriveClient is the blob store: the PDFs of one Drive folder.
type DriveClient struct {
	svc      *drive.Service
	folderID string
}

var _ interfaces.IBlobStore = (*DriveClient)(nil)

func NewDriveClient(ctx context.Context, folderID string, opts ...option.ClientOption) (*DriveClient, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	return &DriveClient{svc: svc, folderID: folderID}, nil
}

func (c *DriveClient) ListPDFs(ctx context.Context) ([]interfaces.BlobFile, error) {
	if c.folderID == "" {
		return nil, ErrFolderNotConfigured
	}
	q := fmt.Sprintf("mimeType='application/pdf' and '%s' in parents and trashed = false", c.folderID)
	files := []interfaces.BlobFile{}
	err := c.svc.Files.List().
		Q(q).
		Spaces("drive").
		Fields("nextPageToken, files(id, name, webViewLink)").
		PageSize(1000).
		Pages(ctx, func(page *drive.FileList) error {
			for _, f := range page.Files {
				files = append(files, interfaces.BlobFile{ID: f.Id, Name: f.Name, Link: f.WebViewLink})
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", c.folderID, err)
	}
	return files, nil
}

func (c *DriveClient) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", fileID, err)
	}
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
}
