package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIShape is a JSON-friendly shape with its computed area.
type CLIShape struct {
	Kind   string `json:"kind"`
	Radius Float  `json:"radius,omitempty"`
	Width  Float  `json:"width,omitempty"`
	Height Float  `json:"height,omitempty"`
	Area   Float  `json:"area"`
}

// CLIAreaReport lists shapes in input order with their summed area.
type CLIAreaReport struct {
	Shapes    []CLIShape `json:"shapes"`
	TotalArea Float      `json:"total_area"`
}

// Float is a float64 that survives JSON when it is not finite. JSON has no
// literal for ±Inf or NaN, so those encode as the strings "+Inf", "-Inf"
// and "NaN".
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q", s)
		}
		*f = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
