package kinematics

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// DHParamConfig is one DH table row as it appears in a model file.
type DHParamConfig struct {
	ID string  `json:"id"`
	D  float64 `json:"d"`
	A  float64 `json:"a"`
}

// ModelConfigJSON represents all supported fields in a kinematics JSON file.
type ModelConfigJSON struct {
	Name         string          `json:"name"`
	KinParamType string          `json:"kinematic_param_type,omitempty"`
	DHParams     []DHParamConfig `json:"dhParams,omitempty"`
}

// UnmarshalModelJSON parses the given JSON data into a kinematics model.
// modelName sets the name of the model, or the name from the JSON if empty.
func UnmarshalModelJSON(jsonData []byte, modelName string) (*Model, error) {
	// empty data probably means the component has no model information
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}

	cfg := &ModelConfigJSON{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg.ParseConfig(modelName)
}

// ParseConfig converts the ModelConfigJSON struct into a Model named
// modelName.
func (cfg *ModelConfigJSON) ParseConfig(modelName string) (*Model, error) {
	if modelName == "" {
		modelName = cfg.Name
	}

	switch cfg.KinParamType {
	case "DH", "":
	default:
		return nil, errors.Errorf("unsupported param type: %s, supported params are DH", cfg.KinParamType)
	}

	params := make([]DHParam, 0, len(cfg.DHParams))
	for _, row := range cfg.DHParams {
		params = append(params, DHParam{ID: row.ID, D: row.D, A: row.A})
	}
	return NewModel(modelName, params)
}
