package openapi

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeJSON serializes the document as indented JSON.
func (d *Document) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// EncodeYAML serializes the document as block-style YAML. Field names and
// omission rules follow the json tags; key order follows the JSON encoding.
func (d *Document) EncodeYAML() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("openapi: convert JSON to YAML: %w", err)
	}
	resetStyle(&node)

	return yaml.Marshal(&node)
}

// resetStyle clears the flow and quoting styles yaml.v3 records when
// decoding JSON so the document is re-encoded in block style. String
// scalars that would resolve to another type are still quoted by the encoder.
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
