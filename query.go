package forecast

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the JSON form of the
// results, e.g. "$[0].equity" or "$[*].assets[?(@.name=='Flat')].netIncome".
//
// Numbers come back as float64.
func Query(results []Result, path string) (any, error) {
	raw, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("cannot encode results: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode results: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return v, nil
}
