package service_test

import (
	"context"
	"errors"
	"testing"

	"stayops/config"
	"stayops/infras/otel/mocks"
	propertyMocks "stayops/internal/domains/property/mocks"
	"stayops/internal/domains/property/model"
	"stayops/internal/domains/property/model/dto"
	"stayops/internal/domains/property/service"
	cacheMocks "stayops/shared/cache/mocks"
	"stayops/shared/constant"
	gDto "stayops/shared/dto"
	"stayops/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Property, *propertyMocks.MockProperty, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func ptr[T any](v T) *T {
	return &v
}

func TestPropertyService_Create(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreatePropertyRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreatePropertyRequest{
				Name:        "Alfama Loft",
				BaseRate:    120,
				WeekendRate: ptr(150.0),
				CleaningFee: 40,
				MaxGuests:   4,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p model.Property) error {
						assert.NotEmpty(t, p.ID)
						assert.True(t, p.Active)
						assert.Equal(t, "tester", p.CreatedBy)
						assert.Equal(t, 150.0, *p.WeekendRate)
						assert.Nil(t, p.WeeklyRate)

						return nil
					})
			},
		},
		{
			name: "repository error",
			req:  dto.CreatePropertyRequest{Name: "Alfama Loft", BaseRate: 120, MaxGuests: 4},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "tester")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Name, res.Name)
		})
	}
}

func TestPropertyService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *propertyMocks.MockProperty, c *cacheMocks.MockRedisCache)
		wantCode  int
		wantName  string
	}{
		{
			name: "cache hit",
			setupMock: func(_ *propertyMocks.MockProperty, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "property:get:p1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, v any) error {
						v.(*dto.PropertyResponse).Name = "cached"

						return nil
					})
			},
			wantName: "cached",
		},
		{
			name: "cache miss then repository",
			setupMock: func(repo *propertyMocks.MockProperty, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{ID: "p1", Name: "Sea View"}, nil)
			},
			wantName: "Sea View",
		},
		{
			name: "not found",
			setupMock: func(repo *propertyMocks.MockProperty, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(repo *propertyMocks.MockProperty, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{}, errors.New("db down"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), "p1")
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
		})
	}
}

func TestPropertyService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Property{{ID: "p1"}, {ID: "p2"}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Properties, 2)
}

func TestPropertyService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdatePropertyRequest
		setupMock func(repo *propertyMocks.MockProperty)
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdatePropertyRequest{},
			setupMock: func(*propertyMocks.MockProperty) {},
			wantCode:  400,
		},
		{
			name: "not found",
			req:  dto.UpdatePropertyRequest{Name: "New"},
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
		{
			name: "successful update",
			req:  dto.UpdatePropertyRequest{BaseRate: ptr(99.0)},
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 99.0, fields[model.FieldBaseRate])

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			err := svc.Update(context.Background(), tt.req, "p1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPropertyService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *propertyMocks.MockProperty)
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "still referenced",
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantCode: 409,
		},
		{
			name: "not found",
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			err := svc.Delete(context.Background(), "p1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
