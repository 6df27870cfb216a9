package booking

import (
	"context"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"nightlife-booking/model"
	locationMock "nightlife-booking/outbound/location/mocks"
	"sync"
	"testing"
)

func TestCascadeLoadProvinces(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := locationMock.NewMockClient(ctrl)

	provinces := []model.Province{{ID: "01", Name: "Hà Nội"}, {ID: "79", Name: "Hồ Chí Minh"}}
	client.EXPECT().Provinces(gomock.Any()).Return(provinces, nil)

	cascade := NewCascade(client)
	require.NoError(t, cascade.LoadProvinces(context.Background()))

	assert.Equal(t, provinces, cascade.Provinces())
}

func TestCascadeLoadProvincesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := locationMock.NewMockClient(ctrl)

	client.EXPECT().Provinces(gomock.Any()).Return(nil, fmt.Errorf("upstream down"))

	cascade := NewCascade(client)
	assert.Error(t, cascade.LoadProvinces(context.Background()))
	assert.Empty(t, cascade.Provinces())
}

func TestCascadeSelectProvinceClearsLowerLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := locationMock.NewMockClient(ctrl)

	client.EXPECT().Provinces(gomock.Any()).
		Return([]model.Province{{ID: "01", Name: "Hà Nội"}}, nil)
	client.EXPECT().Districts(gomock.Any(), "01").
		Return([]model.District{{ID: "001", Name: "Ba Đình"}}, nil)
	client.EXPECT().Wards(gomock.Any(), "001").
		Return([]model.Ward{{ID: "00001", Name: "Phúc Xá"}}, nil)

	ctx := context.Background()
	cascade := NewCascade(client)
	require.NoError(t, cascade.LoadProvinces(ctx))

	cascade.SelectProvince(ctx, "01")
	cascade.SelectDistrict(ctx, "001")
	cascade.SelectWard("00001")
	cascade.SetDetail("12 Phan Đình Phùng")

	addr := cascade.Address()
	assert.Equal(t, "Hà Nội", addr.ProvinceName)
	assert.Equal(t, "Ba Đình", addr.DistrictName)
	assert.Equal(t, "Phúc Xá", addr.WardName)
	assert.Equal(t, "12 Phan Đình Phùng, Phúc Xá, Ba Đình, Hà Nội", addr.String())

	// Re-selecting the province drops everything below it.
	client.EXPECT().Districts(gomock.Any(), "01").
		Return([]model.District{{ID: "002", Name: "Hoàn Kiếm"}}, nil)

	cascade.SelectProvince(ctx, "01")

	addr = cascade.Address()
	assert.Empty(t, addr.DistrictID)
	assert.Empty(t, addr.DistrictName)
	assert.Empty(t, addr.WardID)
	assert.Empty(t, addr.WardName)
	assert.Empty(t, cascade.Wards())
	assert.Equal(t, []model.District{{ID: "002", Name: "Hoàn Kiếm"}}, cascade.Districts())
}

// A slow district response for an abandoned province selection must never
// overwrite the list of the newer selection.
func TestCascadeStaleDistrictResponseDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := locationMock.NewMockClient(ctrl)

	client.EXPECT().Provinces(gomock.Any()).
		Return([]model.Province{{ID: "01", Name: "Hà Nội"}, {ID: "79", Name: "Hồ Chí Minh"}}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().Districts(gomock.Any(), "01").
		DoAndReturn(func(context.Context, string) ([]model.District, error) {
			close(started)
			<-release
			return []model.District{{ID: "001", Name: "Ba Đình"}}, nil
		})
	client.EXPECT().Districts(gomock.Any(), "79").
		Return([]model.District{{ID: "760", Name: "Quận 1"}}, nil)

	ctx := context.Background()
	cascade := NewCascade(client)
	require.NoError(t, cascade.LoadProvinces(ctx))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cascade.SelectProvince(ctx, "01")
	}()

	// The second selection completes while the first fetch is still in
	// flight; releasing the first one afterwards must be a no-op.
	<-started
	cascade.SelectProvince(ctx, "79")
	close(release)
	wg.Wait()

	assert.Equal(t, []model.District{{ID: "760", Name: "Quận 1"}}, cascade.Districts())
	assert.Equal(t, "79", cascade.Address().ProvinceID)
}

func TestCascadeStaleWardResponseDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := locationMock.NewMockClient(ctrl)

	client.EXPECT().Provinces(gomock.Any()).
		Return([]model.Province{{ID: "01", Name: "Hà Nội"}}, nil)
	client.EXPECT().Districts(gomock.Any(), "01").
		Return([]model.District{{ID: "001", Name: "Ba Đình"}, {ID: "002", Name: "Hoàn Kiếm"}}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().Wards(gomock.Any(), "001").
		DoAndReturn(func(context.Context, string) ([]model.Ward, error) {
			close(started)
			<-release
			return []model.Ward{{ID: "00001", Name: "Phúc Xá"}}, nil
		})
	client.EXPECT().Wards(gomock.Any(), "002").
		Return([]model.Ward{{ID: "00037", Name: "Hàng Bạc"}}, nil)

	ctx := context.Background()
	cascade := NewCascade(client)
	require.NoError(t, cascade.LoadProvinces(ctx))
	cascade.SelectProvince(ctx, "01")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cascade.SelectDistrict(ctx, "001")
	}()

	<-started
	cascade.SelectDistrict(ctx, "002")
	close(release)
	wg.Wait()

	assert.Equal(t, []model.Ward{{ID: "00037", Name: "Hàng Bạc"}}, cascade.Wards())
	assert.Equal(t, "002", cascade.Address().DistrictID)
}

func TestCascadeSelectWardUnknownId(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := locationMock.NewMockClient(ctrl)

	cascade := NewCascade(client)
	cascade.SelectWard("missing")

	addr := cascade.Address()
	assert.Equal(t, "missing", addr.WardID)
	assert.Empty(t, addr.WardName)
}
