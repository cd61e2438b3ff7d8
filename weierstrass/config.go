package weierstrass

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"
)

// CurveConfig is the YAML form of CurveParams. Integers are strings so that
// 256 bit values survive; base prefixes (0x, 0o, 0b) and negative
// coefficients are accepted. Omitted coefficients are zero.
type CurveConfig struct {
	Name string `yaml:"name"`
	P    string `yaml:"p"`
	A1   string `yaml:"a1,omitempty"`
	A2   string `yaml:"a2,omitempty"`
	A3   string `yaml:"a3,omitempty"`
	A4   string `yaml:"a4,omitempty"`
	A6   string `yaml:"a6,omitempty"`
	Gx   string `yaml:"gx"`
	Gy   string `yaml:"gy"`
	N    string `yaml:"n"`
}

// CurveSetConfig holds several named curves.
type CurveSetConfig struct {
	Curves []CurveConfig `yaml:"curves"`
}

func parseConfigInt(key, value string, required bool) (*big.Int, error) {
	if value == "" {
		if required {
			return nil, fmt.Errorf("missing value for %s", key)
		}
		return nil, nil
	}
	v, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid Number for %s: %s", key, value)
	}
	return v, nil
}

// Params validates the configuration and builds the curve parameters.
func (cc CurveConfig) Params() (*CurveParams, error) {
	fields := []struct {
		key      string
		value    string
		required bool
	}{
		{"p", cc.P, true},
		{"a1", cc.A1, false},
		{"a2", cc.A2, false},
		{"a3", cc.A3, false},
		{"a4", cc.A4, false},
		{"a6", cc.A6, false},
		{"gx", cc.Gx, true},
		{"gy", cc.Gy, true},
		{"n", cc.N, true},
	}
	values := make([]*big.Int, len(fields))
	for i, fld := range fields {
		v, err := parseConfigInt(fld.key, fld.value, fld.required)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", cc.Name, err)
		}
		values[i] = v
	}
	coeffs := Coefficients{A1: values[1], A2: values[2], A3: values[3], A4: values[4], A6: values[5]}
	cp, err := NewLongCurveParams(values[0], coeffs, values[6], values[7], values[8], cc.Name)
	if err != nil {
		return nil, fmt.Errorf("curve %q: %w", cc.Name, err)
	}
	return cp, nil
}

// Config converts the parameters back to their YAML form.
func (cp *CurveParams) Config() CurveConfig {
	hex := func(v *big.Int) string {
		return fmt.Sprintf("0x%x", v)
	}
	optional := func(v *big.Int) string {
		if v.Sign() == 0 {
			return ""
		}
		return hex(v)
	}
	return CurveConfig{
		Name: cp.name,
		P:    hex(cp.p),
		A1:   optional(cp.a1),
		A2:   optional(cp.a2),
		A3:   optional(cp.a3),
		A4:   optional(cp.a4),
		A6:   optional(cp.a6),
		Gx:   hex(cp.gx),
		Gy:   hex(cp.gy),
		N:    hex(cp.n),
	}
}

// MarshalYAML implements yaml.Marshaler.
func (cp *CurveParams) MarshalYAML() (interface{}, error) {
	return cp.Config(), nil
}

// ParseCurveParamsYAML reads a single curve definition.
func ParseCurveParamsYAML(data []byte) (*CurveParams, error) {
	var cc CurveConfig
	if err := yaml.Unmarshal(data, &cc); err != nil {
		return nil, fmt.Errorf("parsing curve config: %w", err)
	}
	return cc.Params()
}

// ParseCurveSetYAML reads a document with a top level "curves" list and
// returns the curves by name.
func ParseCurveSetYAML(data []byte) (map[string]*CurveParams, error) {
	var set CurveSetConfig
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing curve set config: %w", err)
	}
	result := make(map[string]*CurveParams, len(set.Curves))
	for _, cc := range set.Curves {
		if _, dup := result[cc.Name]; dup {
			return nil, fmt.Errorf("duplicate curve name %q", cc.Name)
		}
		cp, err := cc.Params()
		if err != nil {
			return nil, err
		}
		result[cc.Name] = cp
	}
	return result, nil
}

// LoadCurveParamsYAML reads a single curve definition from a file.
func LoadCurveParamsYAML(path string) (*CurveParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curve config: %w", err)
	}
	return ParseCurveParamsYAML(data)
}
