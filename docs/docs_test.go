package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	if parsed.BasePath != "/api/v1" {
		t.Errorf("basePath = %q", parsed.BasePath)
	}
	if _, ok := parsed.Paths["/sessions/{id}/checkout/confirm"]["post"]; !ok {
		t.Errorf("confirm route is missing from the doc")
	}
}
