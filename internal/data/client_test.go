package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testParams() QuerySeriesParams {
	return QuerySeriesParams{
		Hub:       "HENRY",
		StartDate: date(2023, 1, 1),
		EndDate:   date(2023, 12, 31),
	}
}

func TestQuerySeries(t *testing.T) {
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		assert.Equal(t, "2023-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "monthly", r.URL.Query().Get("frequency"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"date":"2023-01-31T00:00:00Z","hub":"HENRY","price":2.65}]}`))
	}))
	defer server.Close()

	client := NewPriceAPIClient("test-key", server.URL, nil)
	resp, err := client.QuerySeries(context.Background(), testParams())
	require.NoError(t, err)

	assert.Equal(t, "/v1/hubs/HENRY/prices", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 2.65, resp.Data[0].Price)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestQuerySeries_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"RATE_LIMITED","message":"slow down"}}`))
	}))
	defer server.Close()

	client := NewPriceAPIClient("test-key", server.URL, nil)
	_, err := client.QuerySeries(context.Background(), testParams())

	var apiErr *PriceAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "RATE_LIMITED", apiErr.Code)
	assert.Equal(t, "slow down", apiErr.Message)
}

func TestQuerySeries_ValidatesParams(t *testing.T) {
	client := NewPriceAPIClient("test-key", "http://localhost:0", nil)
	ctx := context.Background()

	_, err := client.QuerySeries(ctx, QuerySeriesParams{})
	assert.Error(t, err)

	p := testParams()
	p.StartDate, p.EndDate = p.EndDate, p.StartDate
	_, err = client.QuerySeries(ctx, p)
	assert.Error(t, err)

	noKey := NewPriceAPIClient("", "http://localhost:0", nil)
	_, err = noKey.QuerySeries(ctx, testParams())
	assert.Error(t, err)
}

func TestLoadPricesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	content := `{"status_code":200,"data":[
		{"date":"2023-01-31T00:00:00Z","hub":"HENRY","price":2.65},
		{"date":"2023-01-31T00:00:00Z","hub":"WAHA","price":1.90},
		{"date":"2023-02-28T00:00:00Z","hub":"HENRY","price":2.40}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	resp, err := LoadPricesJSON(path)
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)

	byHub := GroupByHub(resp)
	assert.Len(t, byHub["HENRY"], 2)
	assert.Len(t, byHub["WAHA"], 1)
}

func TestLoadPricesJSON_BareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	content := `[
		{"date":"2023-01-31T00:00:00Z","hub":"HENRY","price":2.65},
		{"date":"2023-02-28T00:00:00Z","hub":"HENRY","price":2.40}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	resp, err := LoadPricesJSON(path)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "HENRY", resp.Data[0].Hub)
}

func TestLoadPricesJSON_NoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"status_code":200}`), 0o644))

	_, err := LoadPricesJSON(path)
	assert.Error(t, err)
}

func TestGroupByHub_Nil(t *testing.T) {
	assert.Empty(t, GroupByHub(nil))
}
