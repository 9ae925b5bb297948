package workout

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Package is one batch of sensor readings: a type code and its positional values.
type Package struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data"`
}

func DemoPackages() []Package {
	return []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// DecodePackages reads a YAML (or JSON) list of packages. Multi-document
// YAML input is concatenated in document order.
func DecodePackages(r io.Reader) ([]Package, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var packages []Package
	for doc := 0; ; doc++ {
		var batch []Package
		err := dec.Decode(&batch)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding packages (document %d): %w", doc, err)
		}
		packages = append(packages, batch...)
	}
	if len(packages) == 0 {
		return nil, errors.New("no packages in input")
	}

	return packages, nil
}
