package location

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/spf13/viper"
	"net/http"
	"nightlife-booking/common/errs"
	"nightlife-booking/common/otel"
	"nightlife-booking/model"
)

// Client lists the public province/district/ward cascade.
type Client interface {
	Provinces(ctx context.Context) ([]model.Province, error)
	Districts(ctx context.Context, provinceID string) ([]model.District, error)
	Wards(ctx context.Context, districtID string) ([]model.Ward, error)
}

type HttpClient struct {
	baseUrl string
	http    *http.Client
}

func NewHttpClient(cfg *viper.Viper) *HttpClient {
	return &HttpClient{
		baseUrl: cfg.GetString("location.base_url"),
		http: &http.Client{
			Timeout:   cfg.GetDuration("location.timeout"),
			Transport: otel.TracingTransport{},
		},
	}
}

type listItem struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type listResponse struct {
	Code string     `json:"code"`
	Data []listItem `json:"data"`
}

func (c *HttpClient) Provinces(ctx context.Context) ([]model.Province, error) {
	items, err := c.list(ctx, "/provinces")
	if err != nil {
		return nil, err
	}

	provinces := make([]model.Province, 0, len(items))
	for _, item := range items {
		provinces = append(provinces, model.Province{ID: item.Id, Name: item.Name})
	}

	return provinces, nil
}

func (c *HttpClient) Districts(ctx context.Context, provinceID string) ([]model.District, error) {
	items, err := c.list(ctx, "/districts/"+provinceID)
	if err != nil {
		return nil, err
	}

	districts := make([]model.District, 0, len(items))
	for _, item := range items {
		districts = append(districts, model.District{ID: item.Id, Name: item.Name})
	}

	return districts, nil
}

func (c *HttpClient) Wards(ctx context.Context, districtID string) ([]model.Ward, error) {
	items, err := c.list(ctx, "/wards/"+districtID)
	if err != nil {
		return nil, err
	}

	wards := make([]model.Ward, 0, len(items))
	for _, item := range items {
		wards = append(wards, model.Ward{ID: item.Id, Name: item.Name})
	}

	return wards, nil
}

func (c *HttpClient) list(ctx context.Context, path string) ([]listItem, error) {
	url := fmt.Sprintf("%s%s?page=0&size=1000", c.baseUrl, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errs.HttpError{Code: resp.StatusCode, Message: "location API returned non-OK status"}
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode location response: %w", err)
	}

	return body.Data, nil
}
