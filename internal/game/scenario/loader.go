// Package scenario loads puzzle samples with known answers from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlFile is the top-level YAML structure for sample files.
type yamlFile struct {
	Day     int          `yaml:"day"`
	Samples []yamlSample `yaml:"samples"`
}

// yamlSample is the YAML representation of one sample.
type yamlSample struct {
	Name  string `yaml:"name"`
	Part  int    `yaml:"part"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

// Sample is a puzzle input with its expected answer.
type Sample struct {
	Name  string
	Day   int
	Part  int
	Input string
	Want  string
}

// Catalog indexes samples by day.
type Catalog struct {
	byDay map[int][]Sample
}

// For returns the samples for day and part in file order.
func (c *Catalog) For(day, part int) []Sample {
	var out []Sample
	for _, s := range c.byDay[day] {
		if s.Part == part {
			out = append(out, s)
		}
	}
	return out
}

// Days returns every day with at least one sample, ascending.
func (c *Catalog) Days() []int {
	return slices.Sorted(maps.Keys(c.byDay))
}

// Len returns the total number of samples.
func (c *Catalog) Len() int {
	n := 0
	for _, s := range c.byDay {
		n += len(s)
	}
	return n
}

func (c *Catalog) add(samples []Sample) error {
	for _, s := range samples {
		for _, existing := range c.byDay[s.Day] {
			if existing.Name == s.Name {
				return fmt.Errorf("duplicate sample %q for day %d", s.Name, s.Day)
			}
		}
		c.byDay[s.Day] = append(c.byDay[s.Day], s)
	}
	return nil
}

// LoadFromBytes parses and validates the samples of one YAML document.
//
// Postcondition: Returns validated samples or a non-nil error.
func LoadFromBytes(data []byte) ([]Sample, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing samples YAML: %w", err)
	}
	if file.Day < 1 {
		return nil, fmt.Errorf("day must be >= 1, got %d", file.Day)
	}

	samples := make([]Sample, 0, len(file.Samples))
	var errs []error
	names := make(map[string]bool, len(file.Samples))
	for i, ys := range file.Samples {
		s := Sample{
			Name:  ys.Name,
			Day:   file.Day,
			Part:  ys.Part,
			Input: ys.Input,
			Want:  strings.TrimSpace(ys.Want),
		}
		if err := s.validate(); err != nil {
			errs = append(errs, fmt.Errorf("sample %d: %w", i, err))
			continue
		}
		if names[s.Name] {
			errs = append(errs, fmt.Errorf("sample %d: duplicate name %q", i, s.Name))
			continue
		}
		names[s.Name] = true
		samples = append(samples, s)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("validating samples: %w", err)
	}
	return samples, nil
}

func (s Sample) validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.Part != 1 && s.Part != 2 {
		errs = append(errs, fmt.Errorf("part must be 1 or 2, got %d", s.Part))
	}
	if strings.TrimSpace(s.Input) == "" {
		errs = append(errs, errors.New("input must not be empty"))
	}
	if s.Want == "" {
		errs = append(errs, errors.New("want must not be empty"))
	}
	return errors.Join(errs...)
}

// LoadFromFile reads and validates a single sample YAML file.
//
// Precondition: path must point to a valid YAML sample file.
// Postcondition: Returns validated samples or a non-nil error.
func LoadFromFile(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sample file %s: %w", path, err)
	}
	samples, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return samples, nil
}

// LoadFromDir loads every YAML file in dir into a Catalog. Sample names must
// be unique per day across files.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns a Catalog (possibly empty) or the first error encountered.
func LoadFromDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sample directory %s: %w", dir, err)
	}

	cat := &Catalog{byDay: make(map[int][]Sample)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		samples, err := LoadFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if err := cat.add(samples); err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
	}
	return cat, nil
}
