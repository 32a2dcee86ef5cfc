package output

import (
	"encoding/json"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// JSONFormatter serializes the projection set as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
