// Package output serializes comparison run summaries.
package output

import (
	"encoding/json"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

// ToJSON serializes a run summary.
func ToJSON(s *models.Summary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
