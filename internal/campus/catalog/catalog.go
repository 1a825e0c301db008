// Package catalog holds the departments the college runs.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"gopkg.in/yaml.v3"
)

//go:embed departments.yaml
var defaultDepartments []byte

var ErrUnknownDepartment = errors.New("unknown department")

type file struct {
	Departments []struct {
		Code string `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"departments"`
}

// Catalog is an immutable set of departments keyed by code.
type Catalog struct {
	byCode map[string]domain.Department
	list   []domain.Department
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultDepartments)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded departments: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns Default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if len(f.Departments) == 0 {
		return nil, errors.New("catalog: no departments")
	}

	c := &Catalog{byCode: make(map[string]domain.Department, len(f.Departments))}
	for _, d := range f.Departments {
		code, err := domain.NormalizeDepartment(d.Code)
		if err != nil {
			return nil, fmt.Errorf("catalog: %q: %w", d.Code, err)
		}
		if _, dup := c.byCode[code]; dup {
			return nil, fmt.Errorf("catalog: duplicate department %s", code)
		}
		dep := domain.Department{Code: code, Name: d.Name}
		c.byCode[code] = dep
		c.list = append(c.list, dep)
	}
	sort.Slice(c.list, func(i, j int) bool { return c.list[i].Code < c.list[j].Code })
	return c, nil
}

// Lookup normalizes s and returns the matching department.
func (c *Catalog) Lookup(s string) (domain.Department, error) {
	code, err := domain.NormalizeDepartment(s)
	if err != nil {
		return domain.Department{}, ErrUnknownDepartment
	}
	d, ok := c.byCode[code]
	if !ok {
		return domain.Department{}, ErrUnknownDepartment
	}
	return d, nil
}

// All returns the departments ordered by code.
func (c *Catalog) All() []domain.Department {
	return append([]domain.Department(nil), c.list...)
}
