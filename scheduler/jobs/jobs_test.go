package jobs

import (
	"context"
	"errors"
	"leaguehub/pkg/models/champion"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockWarmer struct {
	mock.Mock
}

func (m *MockWarmer) Warm(ctx context.Context) (*champion.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*champion.Listing), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadToS3Bucket(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

func TestWarmCatalog(t *testing.T) {
	warmer := new(MockWarmer)
	warmer.On("Warm", mock.Anything).Return(&champion.Listing{Version: "14.1.1", Count: 3}, nil).Once()

	assert.NoError(t, WarmCatalog(context.Background(), warmer, zap.NewNop()))
	warmer.AssertExpectations(t)
}

func TestWarmCatalogError(t *testing.T) {
	warmer := new(MockWarmer)
	warmer.On("Warm", mock.Anything).Return(nil, errors.New("cdn down")).Once()

	assert.Error(t, WarmCatalog(context.Background(), warmer, zap.NewNop()))
}

func TestShipLogs(t *testing.T) {
	uploader := new(MockUploader)
	now := time.Date(2024, 3, 5, 14, 30, 9, 0, time.UTC)
	uploader.On("UploadToS3Bucket", mock.Anything, "api/2024-03-05/143009.log").Return(nil).Once()

	assert.NoError(t, ShipLogs(context.Background(), uploader, now))
	uploader.AssertExpectations(t)
}

func TestShipLogsError(t *testing.T) {
	uploader := new(MockUploader)
	uploader.On("UploadToS3Bucket", mock.Anything, mock.Anything).Return(errors.New("denied"))

	err := ShipLogs(context.Background(), uploader, time.Now())
	assert.ErrorContains(t, err, "failed to ship logs")
}
