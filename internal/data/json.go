package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

// LoadPricesJSON reads hub price history from a local JSON file. Two shapes
// are accepted: the wrapped API response ({"status_code":..,"data":[..]})
// and a bare array of points, which is what `jq .data` exports look like.
func LoadPricesJSON(path string) (*model.PriceHistoryResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var points []model.PricePoint
		if err := json.Unmarshal(raw, &points); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return &model.PriceHistoryResponse{Data: points}, nil
	}

	var resp model.PriceHistoryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%s: no price data", path)
	}
	return &resp, nil
}

// GroupByHub splits a response into hub-keyed slices. Points without a hub
// label are grouped under the empty key.
func GroupByHub(resp *model.PriceHistoryResponse) map[string][]model.PricePoint {
	out := map[string][]model.PricePoint{}
	if resp == nil {
		return out
	}
	for _, pt := range resp.Data {
		out[pt.Hub] = append(out[pt.Hub], pt)
	}
	return out
}
