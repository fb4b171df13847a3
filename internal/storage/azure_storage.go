package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// ArtifactStore pulls trained model artifacts from blob storage into a local
// directory so the registry can load them at startup.
type ArtifactStore interface {
	SyncModels(ctx context.Context, containerURL, destDir string) (int, error)
}

type azureArtifactStore struct {
	client *azblob.Client
}

func NewAzureArtifactStore(accountName, accountKey string) (ArtifactStore, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, err
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &azureArtifactStore{client: client}, nil
}

// SyncModels downloads every *.json blob from the container into destDir and
// returns how many artifacts were written.
func (s *azureArtifactStore) SyncModels(ctx context.Context, containerURL, destDir string) (int, error) {
	parsedURL, err := url.Parse(containerURL)
	if err != nil {
		return 0, fmt.Errorf("invalid container URL: %w", err)
	}
	containerName := strings.TrimPrefix(parsedURL.Path, "/")

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, err
	}

	written := 0
	pager := s.client.NewListBlobsFlatPager(containerName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return written, fmt.Errorf("list blobs: %w", err)
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name == nil || !strings.HasSuffix(*item.Name, ".json") {
				continue
			}
			if err := s.downloadBlob(ctx, containerName, *item.Name, destDir); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

func (s *azureArtifactStore) downloadBlob(ctx context.Context, containerName, blobName, destDir string) error {
	resp, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return fmt.Errorf("download %s: %w", blobName, err)
	}
	retryReader := resp.Body
	defer retryReader.Close()

	data, err := io.ReadAll(retryReader)
	if err != nil {
		return fmt.Errorf("read %s: %w", blobName, err)
	}
	return os.WriteFile(filepath.Join(destDir, filepath.Base(blobName)), data, 0o644)
}
