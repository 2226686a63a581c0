package cli

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/dmitrijs2005/founderstack/internal/models"
)

// Query evaluates a JSONPath expression against the snapshot in its
// persisted JSON form, e.g. $.subscriptions[?(@.cost > 50)].name.
func Query(snap models.Snapshot, path string) (any, error) {
	data, err := json.Marshal(snap.Normalized())
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	return v, nil
}
