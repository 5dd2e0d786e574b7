package seeds

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sample []byte

// Reflection is one entry of a seed file.
type Reflection struct {
	Title     string    `yaml:"title"`
	Excerpt   string    `yaml:"excerpt"`
	Content   string    `yaml:"content"`
	Category  string    `yaml:"category"`
	Tags      []string  `yaml:"tags"`
	Published *bool     `yaml:"published"`
	Date      time.Time `yaml:"date"`
}

// IsPublished defaults to true when the file omits the flag.
func (r Reflection) IsPublished() bool {
	return r.Published == nil || *r.Published
}

type file struct {
	Reflections []Reflection `yaml:"reflections"`
}

// Parse decodes a seed document. Unknown keys are rejected so typos surface.
func Parse(r io.Reader) ([]Reflection, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return f.Reflections, nil
}

// Load reads path, or the embedded sample when path is empty.
func Load(path string) ([]Reflection, error) {
	if path == "" {
		return Sample()
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()

	return Parse(fh)
}

func Sample() ([]Reflection, error) {
	return Parse(bytes.NewReader(sample))
}
