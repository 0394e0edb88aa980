package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/effect-tables", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"interventions": [{"name": "Smoking cessation", "rrr_5yr_pct": 6, "rrr_lifetime_pct": 18}],
			"therapies": [{"name": "Atorvastatin 80 mg", "ldl_reduction_pct": 52}]
		}`))
	}))
	defer srv.Close()

	cat, err := LoadFromRegistry(srv.URL)
	require.NoError(t, err)
	require.Len(t, cat.Interventions, 1)
	require.Len(t, cat.Therapies, 1)

	iv, ok := cat.Intervention("Smoking cessation")
	require.True(t, ok)
	assert.InDelta(t, 18, iv.RRRLifetime, 1e-9)
}

func TestLoadFromRegistryNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := LoadFromRegistry(srv.URL)
	assert.Error(t, err)
}

func TestLoadFromRegistryEmptyTables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"interventions": [], "therapies": []}`))
	}))
	defer srv.Close()

	_, err := LoadFromRegistry(srv.URL)
	assert.Error(t, err)
}

func TestLoadFromRegistryUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := LoadFromRegistry(srv.URL)
	assert.Error(t, err)
}
