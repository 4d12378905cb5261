package jobs

import (
	"context"
	"fmt"
	"time"
)

// LogUploader ships the log file to the bucket.
type LogUploader interface {
	UploadToS3Bucket(ctx context.Context, objectKey string) error
}

// ShipLogs uploads the current log file under a time based key.
func ShipLogs(ctx context.Context, uploader LogUploader, now time.Time) error {
	objectKey := fmt.Sprintf("api/%s/%s.log", now.UTC().Format("2006-01-02"), now.UTC().Format("150405"))
	if err := uploader.UploadToS3Bucket(ctx, objectKey); err != nil {
		return fmt.Errorf("failed to ship logs: %w", err)
	}
	return nil
}
