package googlemaps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// Client wraps the Google Maps Distance Matrix API for driving-distance
// lookups from the fixed service-center origin.
type Client struct {
	client  *maps.Client
	origin  string
	timeout time.Duration
}

// NewClient creates a maps client with the given API key and origin.
func NewClient(apiKey, origin string, timeout time.Duration) (*Client, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("googlemaps: create client: %w", err)
	}
	return &Client{client: c, origin: origin, timeout: timeout}, nil
}

// DrivingDistance returns the driving distance and duration from the
// service-center origin to the destination address. The request avoids
// tolls and uses imperial units; it is bounded by the configured timeout.
func (c *Client) DrivingDistance(ctx context.Context, destination string) (DriveEstimate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	r := &maps.DistanceMatrixRequest{
		Origins:      []string{c.origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsImperial,
		Avoid:        maps.AvoidTolls,
	}

	resp, err := c.client.DistanceMatrix(ctx, r)
	if err != nil {
		return DriveEstimate{}, fmt.Errorf("%w: distance matrix request: %v", ErrProviderUnavailable, err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return DriveEstimate{}, fmt.Errorf("%w: empty distance matrix response", ErrNoRoute)
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return DriveEstimate{}, fmt.Errorf("%w: element status %s", ErrNoRoute, element.Status)
	}

	return DriveEstimate{
		Meters:   element.Distance.Meters,
		Duration: element.Duration,
	}, nil
}
