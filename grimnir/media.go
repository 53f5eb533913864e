package grimnir

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
)

// UploadMedia uploads an audio file to the station's media library.
// The attachment travels as a single multipart field named "file".
func (c *Client) UploadMedia(ctx context.Context, stationID string, file FileAttachment) (map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	return c.upload(ctx, "/media/upload", params, file)
}

// UploadMediaFile uploads an audio file from disk. The MIME type is
// derived from the extension, falling back to audio/mpeg.
func (c *Client) UploadMediaFile(ctx context.Context, stationID, path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "audio/mpeg"
	}

	return c.UploadMedia(ctx, stationID, FileAttachment{
		Filename: filepath.Base(path),
		Content:  content,
		MIMEType: mimeType,
	})
}

// GetMedia returns details of a media item.
func (c *Client) GetMedia(ctx context.Context, mediaID string) (map[string]any, error) {
	return c.getJSON(ctx, "/media/"+mediaID, nil)
}
