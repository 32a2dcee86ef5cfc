package compare

import (
	"encoding/json"
)

// JSONFormatter formats sweep results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for sweep results
func (jf *JSONFormatter) Format(sweepSet *SweepSet) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(sweepSet, "", "  ")
	} else {
		data, err = json.Marshal(sweepSet)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
