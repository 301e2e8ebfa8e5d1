// Package metadata looks up descriptive facility data over HTTP
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"hotelhub/pkg/httpclient"
	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

const (
	pathFacility = "/api/v1/facilities/{id}"
	pathLookup   = "/api/v1/facilities/lookup"
)

type localizedText struct {
	Ru string `json:"ru"`
	En string `json:"en"`
}

type facilityDTO struct {
	ID                   int64         `json:"id"`
	Name                 string        `json:"name"`
	Address              string        `json:"address"`
	Stars                int           `json:"stars"`
	CheckInTime          string        `json:"check_in_time"`
	CheckOutTime         string        `json:"check_out_time"`
	ImportantInformation localizedText `json:"important_information"`
	Images               []string      `json:"images"`
}

func (d *facilityDTO) toModel() *model.Facility {
	return &model.Facility{
		ID:                     d.ID,
		Name:                   d.Name,
		Address:                d.Address,
		Stars:                  d.Stars,
		CheckInTime:            d.CheckInTime,
		CheckOutTime:           d.CheckOutTime,
		ImportantInformation:   d.ImportantInformation.Ru,
		ImportantInformationEn: d.ImportantInformation.En,
		Images:                 d.Images,
	}
}

type lookupRequest struct {
	IDs []int64 `json:"ids"`
}

type lookupResponse struct {
	Facilities []facilityDTO `json:"facilities"`
}

type client struct {
	http   httpclient.HTTPClient
	logger logger.LoggerInterface
}

// New creates a metadata lookup backed by the facility content service
func New(httpClient httpclient.HTTPClient, log logger.LoggerInterface) repository.Metadata {
	return &client{
		http:   httpClient,
		logger: logger.WithComponent(log, "metadata"),
	}
}

// GetOne returns nil when the content service does not know the facility
func (c *client) GetOne(ctx context.Context, id int64) (*model.Facility, error) {
	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method:     http.MethodGet,
		Path:       pathFacility,
		PathParams: map[string]string{"id": strconv.FormatInt(id, 10)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get facility %d: %w", id, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if !resp.IsSuccess() {
		return nil, &httpclient.StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var dto facilityDTO
	if err := json.Unmarshal(resp.Body, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode facility %d: %w", id, err)
	}
	return dto.toModel(), nil
}

// GetMany returns the facilities the content service knows among ids
func (c *client) GetMany(ctx context.Context, ids []int64) ([]*model.Facility, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var resp lookupResponse
	if err := c.http.PostJSON(ctx, pathLookup, lookupRequest{IDs: ids}, &resp, nil); err != nil {
		return nil, fmt.Errorf("failed to look up %d facilities: %w", len(ids), err)
	}

	facilities := make([]*model.Facility, 0, len(resp.Facilities))
	for i := range resp.Facilities {
		facilities = append(facilities, resp.Facilities[i].toModel())
	}
	c.logger.DebugContext(ctx, "Facilities looked up", "requested", len(ids), "found", len(facilities))
	return facilities, nil
}
