package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/breaker"
	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const breakerName = "geocode-nominatim"

type Nominatim struct {
	endpoint  string
	userAgent string
	timeout   time.Duration
}

func NewNominatim(c Conf) *Nominatim {
	timeout := time.Duration(c.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Nominatim{
		endpoint:  strings.TrimRight(c.Endpoint, "/"),
		userAgent: c.UserAgent,
		timeout:   timeout,
	}
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
	} `json:"address"`
}

func (p place) city() string {
	for _, c := range []string{p.Address.City, p.Address.Town, p.Address.Village, p.Address.Municipality} {
		if c != "" {
			return c
		}
	}
	return ""
}

// Geocode resolves address through the search endpoint. Calls go through a
// circuit breaker so a dead upstream fails fast.
func (n *Nominatim) Geocode(ctx context.Context, address string) (*Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrNoMatch
	}

	var loc *Location
	err := breaker.DoWithAcceptable(breakerName, func() error {
		var err error
		loc, err = n.search(ctx, address)
		return err
	}, func(err error) bool {
		return err == nil || err == ErrNoMatch
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (n *Nominatim) search(ctx context.Context, address string) (*Location, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := httpc.DoRequest(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var places []place
	if err := jsonx.UnmarshalFromReader(resp.Body, &places); err != nil {
		return nil, fmt.Errorf("geocode decode: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrNoMatch
	}

	p := places[0]
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode longitude %q: %w", p.Lon, err)
	}
	return &Location{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: p.DisplayName,
		City:        p.city(),
	}, nil
}
