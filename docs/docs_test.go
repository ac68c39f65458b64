package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

// The committed doc must cover every route the API serves.
func TestSwaggerDocCoversAPISurface(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var spec struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	for path, methods := range map[string][]string{
		"/users":                                {"get", "post"},
		"/users/{id}":                           {"get", "put", "delete"},
		"/users/{userId}/friends/{friendId}":    {"post", "delete"},
		"/thoughts":                             {"get", "post"},
		"/thoughts/{id}":                        {"get", "put", "delete"},
		"/thoughts/{id}/reactions":              {"post"},
		"/thoughts/{id}/reactions/{reactionId}": {"delete"},
	} {
		require.Contains(t, spec.Paths, path)
		for _, method := range methods {
			assert.Contains(t, spec.Paths[path], method, "%s %s", method, path)
		}
	}
}
