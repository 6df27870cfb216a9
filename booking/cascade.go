package booking

import (
	"context"
	"log/slog"
	"nightlife-booking/common/constant"
	"nightlife-booking/model"
	"nightlife-booking/outbound/location"
	"sync"
)

// Cascade resolves the province -> district -> ward address chain. Selecting
// a level clears everything below it before fetching the next option list.
//
// Each dependent level carries a sequence number that is bumped on every new
// selection; a fetch result is applied only if its sequence is still current,
// so a slow response for an abandoned selection can never overwrite a fresher
// one.
type Cascade struct {
	client location.Client

	mu          sync.Mutex
	provinces   []model.Province
	districts   []model.District
	wards       []model.Ward
	address     model.Address
	districtSeq uint64
	wardSeq     uint64
}

func NewCascade(client location.Client) *Cascade {
	return &Cascade{client: client}
}

// LoadProvinces populates the top level. Unlike the dependent levels it has
// no selection to race against, so the list is applied unconditionally.
func (c *Cascade) LoadProvinces(ctx context.Context) error {
	provinces, err := c.client.Provinces(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.provinces = provinces
	c.mu.Unlock()

	return nil
}

// SelectProvince records the choice, drops the district and ward state and
// fetches the district list. A fetch failure degrades to an empty list.
func (c *Cascade) SelectProvince(ctx context.Context, id string) {
	c.mu.Lock()
	c.address.ProvinceID = id
	c.address.ProvinceName = c.provinceName(id)
	c.address.DistrictID = ""
	c.address.DistrictName = ""
	c.address.WardID = ""
	c.address.WardName = ""
	c.districts = nil
	c.wards = nil
	c.districtSeq++
	c.wardSeq++
	seq := c.districtSeq
	c.mu.Unlock()

	districts, err := c.client.Districts(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch districts", slog.String("province_id", id), slog.Any(constant.LogFieldErr, err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.districtSeq {
		slog.DebugContext(ctx, "discarding stale district response", slog.String("province_id", id))
		return
	}

	c.districts = districts
}

// SelectDistrict records the choice, drops the ward state and fetches the
// ward list.
func (c *Cascade) SelectDistrict(ctx context.Context, id string) {
	c.mu.Lock()
	c.address.DistrictID = id
	c.address.DistrictName = c.districtName(id)
	c.address.WardID = ""
	c.address.WardName = ""
	c.wards = nil
	c.wardSeq++
	seq := c.wardSeq
	c.mu.Unlock()

	wards, err := c.client.Wards(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch wards", slog.String("district_id", id), slog.Any(constant.LogFieldErr, err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.wardSeq {
		slog.DebugContext(ctx, "discarding stale ward response", slog.String("district_id", id))
		return
	}

	c.wards = wards
}

// SelectWard is the leaf level, no dependent fetch.
func (c *Cascade) SelectWard(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.address.WardID = id
	for _, w := range c.wards {
		if w.ID == id {
			c.address.WardName = w.Name
			return
		}
	}
	c.address.WardName = ""
}

func (c *Cascade) SetDetail(detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.address.Detail = detail
}

func (c *Cascade) Provinces() []model.Province {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Province(nil), c.provinces...)
}

func (c *Cascade) Districts() []model.District {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.District(nil), c.districts...)
}

func (c *Cascade) Wards() []model.Ward {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Ward(nil), c.wards...)
}

func (c *Cascade) Address() model.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.address
}

func (c *Cascade) provinceName(id string) string {
	for _, p := range c.provinces {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (c *Cascade) districtName(id string) string {
	for _, d := range c.districts {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}
