package indicator

import (
	"encoding/json"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// ParamsSchema describes an indicator's option bag as a JSON schema. Periods
// are constrained to positive integers.
func ParamsSchema(ind Indicator) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Version:     jsonschema.Version,
		ID:          jsonschema.ID("https://github.com/rxtech-lab/argo-indicators/indicators/" + string(ind.Name())),
		Title:       ind.Title(),
		Description: string(ind.Group()),
		Type:        "object",
		Properties:  jsonschema.NewProperties(),
	}

	for _, p := range ind.Params() {
		prop := &jsonschema.Schema{Default: p.Default}

		switch p.Type {
		case types.ParamTypeInt:
			prop.Type = "integer"
			if strings.Contains(p.Name, "period") {
				prop.Minimum = json.Number("1")
			}
		case types.ParamTypeFloat:
			prop.Type = "number"
		case types.ParamTypeBool:
			prop.Type = "boolean"
		case types.ParamTypeIntList:
			prop.Type = "array"
			prop.Items = &jsonschema.Schema{Type: "integer", Minimum: json.Number("1")}
		}

		schema.Properties.Set(p.Name, prop)
	}

	return schema
}

// ParamsSchemaJSON renders ParamsSchema as indented JSON.
func ParamsSchemaJSON(ind Indicator) (string, error) {
	data, err := json.MarshalIndent(ParamsSchema(ind), "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
