package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"leaguehub/pkg/config"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ObjectPutter is the part of the S3 client used for shipping logs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// FileSink is a temporary log file that can be shipped to a bucket and truncated.
type FileSink struct {
	mu sync.Mutex
	// uploadMu keeps the uploads one at a time, mu is only held for the file operations.
	uploadMu sync.Mutex
	logFile  *os.File
	filePath string
	bucket   string
	client   ObjectPutter
}

// New builds the zap logger.
// If a log bucket is configured, the logs are also written to a temporary file returned as the sink.
func New(cfg config.LogsConfiguration) (*zap.Logger, *FileSink, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	// Without a bucket there is nothing to ship.
	var sink *FileSink
	if cfg.Bucket != "" {
		sink, err = CreateFileSink(cfg.Bucket, newS3Client(cfg))
		if err != nil {
			return nil, nil, err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(sink), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), sink, nil
}

// newS3Client creates the client with static credentials and the custom endpoint.
func newS3Client(cfg config.LogsConfiguration) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.AccessSecret,
				"",
			),
		),
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

// CreateFileSink creates the sink with a temporary file.
func CreateFileSink(bucket string, client ObjectPutter) (*FileSink, error) {
	f, err := os.CreateTemp("", "leaguehub-*.log")
	if err != nil {
		return nil, fmt.Errorf("couldn't create the log file: %w", err)
	}

	return &FileSink{
		logFile:  f,
		filePath: f.Name(),
		bucket:   bucket,
		client:   client,
	}, nil
}

// Write appends to the log file.
func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logFile.Write(p)
}

// Sync flushes the file.
func (s *FileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logFile.Sync()
}

// Close closes and removes the temporary file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(s.filePath)
}

// UploadToS3Bucket uploads the current file contents and removes them from the file afterwards.
// Writes keep going during the upload, what they append stays for the next one.
func (s *FileSink) UploadToS3Bucket(ctx context.Context, objectKey string) error {
	s.uploadMu.Lock()
	defer s.uploadMu.Unlock()

	data, err := s.snapshot()
	if err != nil {
		return err
	}

	// Nothing was logged since the last upload.
	if len(data) == 0 {
		return nil
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(data),
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	return s.discard(len(data))
}

// snapshot reads the whole file.
func (s *FileSink) snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read the log file: %w", err)
	}
	return data, nil
}

// discard drops the first n bytes of the file, keeping what was written after them.
func (s *FileSink) discard(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read the log file: %w", err)
	}
	rest := data[min(n, len(data)):]

	if err := s.logFile.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate the log file: %w", err)
	}
	if _, err := s.logFile.Seek(0, io.SeekStart); err != nil {
		return err
	}

	_, err = s.logFile.Write(rest)
	return err
}
