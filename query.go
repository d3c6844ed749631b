package bookstore

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the inventory's snapshot
// document, the same document Save writes. It is meant for scripting, e.g.
// "$.books[*].title" or "$.total_inventory_value".
func (inv *Inventory) Query(expr string) (any, error) {
	data, err := json.Marshal(inv.snapshot(inv.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("could not encode inventory snapshot: %w", err)
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not decode inventory snapshot: %w", err)
	}

	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	return jval, nil
}
