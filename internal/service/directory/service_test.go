package directory

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/shift-reminder/internal/mocks/service/directory"
	"github.com/aliskhannn/shift-reminder/internal/model"
)

func TestMain(m *testing.M) {
	zlog.Init()
	os.Exit(m.Run())
}

var profile = model.ContactProfile{UserID: "u1", Phone: "+15550001111", OptIn: true}

func cached(t *testing.T, p model.ContactProfile, at time.Time) string {
	t.Helper()

	data, err := json.Marshal(cachedProfile{Profile: p, CachedAt: at})
	require.NoError(t, err)

	return string(data)
}

func TestService_GetContact_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{Attempts: 1}

	now := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)
	svc := NewService(repoMock, cacheMock, strategy, 10*time.Minute)
	svc.now = func() time.Time { return now }

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "contact:u1").
		Return(cached(t, profile, now.Add(-time.Minute)), nil)

	p, err := svc.GetContact(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, profile, p)
}

func TestService_GetContact_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{Attempts: 1}

	svc := NewService(repoMock, cacheMock, strategy, 10*time.Minute)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "contact:u1").Return("", redis.Nil)
	repoMock.EXPECT().GetContact(gomock.Any(), "u1").Return(profile, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "contact:u1", gomock.Any()).Return(nil)

	p, err := svc.GetContact(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, profile, p)
}

func TestService_GetContact_StaleEntryRefreshed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	now := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)
	svc := NewService(repoMock, cacheMock, retry.Strategy{}, 10*time.Minute)
	svc.now = func() time.Time { return now }

	optedOut := profile
	optedOut.OptIn = false

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), "contact:u1").
		Return(cached(t, profile, now.Add(-time.Hour)), nil)
	repoMock.EXPECT().GetContact(gomock.Any(), "u1").Return(optedOut, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), "contact:u1", gomock.Any()).Return(nil)

	p, err := svc.GetContact(context.Background(), "u1")
	assert.NoError(t, err)
	assert.False(t, p.OptIn)
}

func TestService_GetContact_CacheErrorFallsBackToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, cacheMock, retry.Strategy{}, 0)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), "contact:u1").Return("", errors.New("redis down"))
	repoMock.EXPECT().GetContact(gomock.Any(), "u1").Return(profile, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), "contact:u1", gomock.Any()).Return(errors.New("redis down"))

	p, err := svc.GetContact(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, profile, p)
}

func TestService_GetContact_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	svc := NewService(repoMock, nil, retry.Strategy{}, 0)

	repoMock.EXPECT().GetContact(gomock.Any(), "u1").Return(model.ContactProfile{}, errors.New("db down"))

	_, err := svc.GetContact(context.Background(), "u1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
