package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/rentalops/vehicle_rental/internal/models"
)

const VehicleIndex = "vehicles"

// Doc is the flattened shape of a vehicle in the search index.
type Doc struct {
	VehicleID    uint    `json:"vehicle_id"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Color        string  `json:"color"`
	Features     string  `json:"features"`
	RentalRate   float64 `json:"rental_rate"`
	Availability bool    `json:"availability"`
}

func docFromVehicle(v *models.Vehicle) Doc {
	return Doc{
		VehicleID:    v.ID,
		Manufacturer: v.Spec.Manufacturer,
		Model:        v.Spec.Model,
		Year:         v.Spec.Year,
		FuelType:     v.Spec.FuelType,
		Transmission: v.Spec.Transmission,
		Color:        v.Spec.Color,
		Features:     v.Spec.Features,
		RentalRate:   v.RentalRate,
		Availability: v.Availability,
	}
}

func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []Doc, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"manufacturer^2", "model^2", "features", "color", "fuel_type"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source Doc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	docs := make([]Doc, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		docs[i] = hit.Source
	}
	return r.Hits.Total.Value, docs, nil
}

// Indexer mirrors catalog writes into the search index.
type Indexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewIndexer(es *elasticsearch.Client) *Indexer {
	return &Indexer{ES: es, Index: VehicleIndex}
}

func (ix *Indexer) IndexVehicle(ctx context.Context, v *models.Vehicle) error {
	data, err := json.Marshal(docFromVehicle(v))
	if err != nil {
		return fmt.Errorf("marshal vehicle doc: %w", err)
	}

	res, err := ix.ES.Index(
		ix.Index,
		strings.NewReader(string(data)),
		ix.ES.Index.WithContext(ctx),
		ix.ES.Index.WithDocumentID(fmt.Sprint(v.ID)),
	)
	if err != nil {
		return fmt.Errorf("index vehicle: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index vehicle: %s", res.Status())
	}
	return nil
}

func (ix *Indexer) DeleteVehicle(ctx context.Context, id uint) error {
	res, err := ix.ES.Delete(
		ix.Index,
		fmt.Sprint(id),
		ix.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete vehicle doc: %w", err)
	}
	defer res.Body.Close()
	// A missing doc is fine, the vehicle may never have been indexed.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete vehicle doc: %s", res.Status())
	}
	return nil
}
