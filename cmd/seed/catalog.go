package main

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

//go:embed schemas/*.json data/*.yaml
var bundled embed.FS

type universityRecord struct {
	Slug            string   `yaml:"slug"`
	Name            string   `yaml:"name"`
	NameRu          string   `yaml:"nameRu"`
	Country         string   `yaml:"country"`
	CountryRu       string   `yaml:"countryRu"`
	City            string   `yaml:"city"`
	CityRu          string   `yaml:"cityRu"`
	Description     string   `yaml:"description"`
	DescriptionRu   string   `yaml:"descriptionRu"`
	LogoURL         string   `yaml:"logoUrl"`
	CoverImageURL   string   `yaml:"coverImageUrl"`
	Ranking         *int     `yaml:"ranking"`
	FoundedYear     *int     `yaml:"foundedYear"`
	Website         string   `yaml:"website"`
	Email           string   `yaml:"email"`
	Phone           string   `yaml:"phone"`
	Address         string   `yaml:"address"`
	AddressRu       string   `yaml:"addressRu"`
	StudentsCount   *int     `yaml:"studentsCount"`
	HasHostel       bool     `yaml:"hasHostel"`
	HasMilitaryDept bool     `yaml:"hasMilitaryDept"`
	AcceptanceRate  *float64 `yaml:"acceptanceRate"`
	TuitionFee      *int     `yaml:"tuitionFee"`
	Accreditation   string   `yaml:"accreditation"`
	UniversityType  string   `yaml:"universityType"`
}

func (r universityRecord) input() admindomain.UniversityInput {
	return admindomain.UniversityInput{
		Slug:            r.Slug,
		Name:            r.Name,
		NameRu:          r.NameRu,
		Country:         r.Country,
		CountryRu:       r.CountryRu,
		City:            r.City,
		CityRu:          r.CityRu,
		Description:     r.Description,
		DescriptionRu:   r.DescriptionRu,
		LogoURL:         r.LogoURL,
		CoverImageURL:   r.CoverImageURL,
		Ranking:         r.Ranking,
		FoundedYear:     r.FoundedYear,
		Website:         r.Website,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		AddressRu:       r.AddressRu,
		StudentsCount:   r.StudentsCount,
		HasHostel:       r.HasHostel,
		HasMilitaryDept: r.HasMilitaryDept,
		AcceptanceRate:  r.AcceptanceRate,
		TuitionFee:      r.TuitionFee,
		Accreditation:   r.Accreditation,
		UniversityType:  r.UniversityType,
	}
}

type majorRecord struct {
	Code               string   `yaml:"code"`
	Name               string   `yaml:"name"`
	NameRu             string   `yaml:"nameRu"`
	Description        string   `yaml:"description"`
	DescriptionRu      string   `yaml:"descriptionRu"`
	Category           string   `yaml:"category"`
	RiasecTypes        []string `yaml:"riasecTypes"`
	SubjectCombination []string `yaml:"subjectCombination"`
}

// catalogData is a validated catalog ready to be written.
type catalogData struct {
	Universities []admindomain.University
	Majors       []admindomain.Major
}

// readSource reads path, or the bundled sample when path is empty.
func readSource(path, bundledName string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return bundled.ReadFile(bundledName)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

// parseCatalog checks both documents against their JSON schemas, then builds
// the domain aggregates. Duplicate slugs or codes are rejected.
func parseCatalog(universityRaw, majorRaw []byte) (*catalogData, error) {
	if err := validateDocument("universities", universityRaw); err != nil {
		return nil, err
	}
	if err := validateDocument("majors", majorRaw); err != nil {
		return nil, err
	}

	var universityFile struct {
		Universities []universityRecord `yaml:"universities"`
	}
	if err := yaml.Unmarshal(universityRaw, &universityFile); err != nil {
		return nil, fmt.Errorf("decode universities: %w", err)
	}
	var majorFile struct {
		Majors []majorRecord `yaml:"majors"`
	}
	if err := yaml.Unmarshal(majorRaw, &majorFile); err != nil {
		return nil, fmt.Errorf("decode majors: %w", err)
	}

	data := &catalogData{}
	slugs := make(map[admindomain.Slug]struct{})
	for i, rec := range universityFile.Universities {
		u, err := admindomain.NewUniversity(rec.input())
		if err != nil {
			return nil, fmt.Errorf("universities[%d]: %w", i, err)
		}
		if _, dup := slugs[u.Slug]; dup {
			return nil, fmt.Errorf("universities[%d]: duplicate slug %q", i, u.Slug)
		}
		slugs[u.Slug] = struct{}{}
		data.Universities = append(data.Universities, u)
	}

	codes := make(map[admindomain.MajorCode]struct{})
	for i, rec := range majorFile.Majors {
		m, err := admindomain.NewMajor(admindomain.MajorInput(rec))
		if err != nil {
			return nil, fmt.Errorf("majors[%d]: %w", i, err)
		}
		if _, dup := codes[m.Code]; dup {
			return nil, fmt.Errorf("majors[%d]: duplicate code %q", i, m.Code)
		}
		codes[m.Code] = struct{}{}
		data.Majors = append(data.Majors, m)
	}
	return data, nil
}

var (
	schemaOnce sync.Once
	schemas    map[string]*jsonschema.Schema
	schemaErr  error
)

func compiledSchemas() (map[string]*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		compiled := make(map[string]*jsonschema.Schema)
		for _, name := range []string{"universities", "majors"} {
			raw, err := bundled.ReadFile("schemas/" + name + ".schema.json")
			if err != nil {
				schemaErr = err
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				schemaErr = fmt.Errorf("parse %s schema: %w", name, err)
				return
			}
			url := fmt.Sprintf("schema://%s.json", name)
			if err := c.AddResource(url, doc); err != nil {
				schemaErr = fmt.Errorf("add %s schema: %w", name, err)
				return
			}
			schema, err := c.Compile(url)
			if err != nil {
				schemaErr = fmt.Errorf("compile %s schema: %w", name, err)
				return
			}
			compiled[name] = schema
		}
		schemas = compiled
	})
	return schemas, schemaErr
}

// validateDocument converts a YAML document to its JSON value and validates
// it against the named schema.
func validateDocument(name string, raw []byte) error {
	all, err := compiledSchemas()
	if err != nil {
		return err
	}

	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("%s: invalid YAML: %w", name, err)
	}
	asJSON, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	var parsed any
	if err := json.Unmarshal(asJSON, &parsed); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := all[name].Validate(parsed); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", name, err)
	}
	return nil
}

type universityUpserter interface {
	UpsertBySlug(ctx context.Context, university *admindomain.University) (bool, error)
}

type majorUpserter interface {
	UpsertByCode(ctx context.Context, major *admindomain.Major) (bool, error)
}

type loadStats struct {
	universitiesInserted int
	universitiesUpdated  int
	majorsInserted       int
	majorsUpdated        int
}

func loadCatalog(ctx context.Context, data *catalogData, universities universityUpserter, majors majorUpserter) (loadStats, error) {
	var stats loadStats
	for i := range data.Universities {
		u := &data.Universities[i]
		created, err := universities.UpsertBySlug(ctx, u)
		if err != nil {
			return stats, fmt.Errorf("upsert university %s: %w", u.Slug, err)
		}
		if created {
			stats.universitiesInserted++
		} else {
			stats.universitiesUpdated++
		}
	}
	for i := range data.Majors {
		m := &data.Majors[i]
		created, err := majors.UpsertByCode(ctx, m)
		if err != nil {
			return stats, fmt.Errorf("upsert major %s: %w", m.Code, err)
		}
		if created {
			stats.majorsInserted++
		} else {
			stats.majorsUpdated++
		}
	}
	return stats, nil
}
