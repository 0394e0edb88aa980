package catalog

import (
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

var registryClient = &http.Client{
	Timeout: 2 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	},
}

// LoadFromRegistry fetches replacement effect tables from an external
// registry. It is called once at startup; callers keep the built-in tables
// on any error.
func LoadFromRegistry(baseURL string) (Catalog, error) {
	resp, err := registryClient.Get(baseURL + "/v1/effect-tables")
	if err != nil {
		return Catalog{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return Catalog{}, fmt.Errorf("effect-table registry returned status %d", resp.StatusCode)
	}

	var cat Catalog
	if err := json.NewDecoder(resp.Body).Decode(&cat); err != nil {
		return Catalog{}, err
	}
	if len(cat.Interventions) == 0 || len(cat.Therapies) == 0 {
		return Catalog{}, fmt.Errorf("effect-table registry returned empty tables")
	}
	return cat, nil
}
