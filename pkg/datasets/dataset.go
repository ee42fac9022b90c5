package datasets

import (
	"fmt"

	"github.com/travigo/agency-tools/pkg/agency"
	"github.com/travigo/agency-tools/pkg/gtfs"
	"github.com/travigo/agency-tools/pkg/transforms"
	"gopkg.in/yaml.v3"
)

type DataSet struct {
	Identifier    string        `yaml:"Identifier" validate:"required"`
	DataSourceRef string        `yaml:"-"`
	Format        DataSetFormat `yaml:"Format" validate:"oneof=gtfs-schedule"`

	Provider Provider `yaml:"-" validate:"-"`

	Source       string       `yaml:"Source" validate:"required"`
	UnpackBundle BundleFormat `yaml:"UnpackBundle" validate:"oneof=none zip"`

	PolicyPreset string    `yaml:"PolicyPreset"`
	Policy       yaml.Node `yaml:"Policy" validate:"-"`

	Transforms transforms.Transforms `yaml:"Transforms" validate:"-"`

	SupportedObjects  SupportedObjects  `yaml:"SupportedObjects" validate:"-"`
	ImportDestination ImportDestination `yaml:"ImportDestination" validate:"oneof=directory database sqlite"`
	Output            string            `yaml:"Output"`
}

type DataSetFormat string

const (
	DataSetFormatGTFSSchedule DataSetFormat = "gtfs-schedule"
)

type Provider struct {
	Name    string `yaml:"Name"`
	Website string `yaml:"Website"`
}

type BundleFormat string

const (
	BundleFormatNone BundleFormat = "none"
	BundleFormatZIP  BundleFormat = "zip"
)

type ImportDestination string

const (
	ImportDestinationDirectory ImportDestination = "directory"
	ImportDestinationDatabase  ImportDestination = "database"
	ImportDestinationSQLite    ImportDestination = "sqlite"
)

// LoadSchedule parses a resolved source the way UnpackBundle describes it
func (d *DataSet) LoadSchedule(source string) (*gtfs.Schedule, error) {
	switch d.UnpackBundle {
	case BundleFormatZIP:
		return gtfs.ParseZipFile(source)
	case BundleFormatNone, "":
		return gtfs.ParseUnpacked(source)
	default:
		return nil, fmt.Errorf("dataset %s: unrecognised bundle format %s", d.Identifier, d.UnpackBundle)
	}
}

// PolicyConfig starts from the named preset and decodes the Policy block on top of it
func (d *DataSet) PolicyConfig() (agency.Config, error) {
	var config agency.Config

	if d.PolicyPreset != "" {
		preset, exists := presets[d.PolicyPreset]
		if !exists {
			return config, fmt.Errorf("dataset %s: unknown policy preset %s", d.Identifier, d.PolicyPreset)
		}
		config = preset()
	}

	if !d.Policy.IsZero() {
		if err := d.Policy.Decode(&config); err != nil {
			return config, fmt.Errorf("dataset %s: decode policy: %w", d.Identifier, err)
		}
	}

	return config, nil
}

func (d *DataSet) NewPolicy() (*agency.SingleRoutePolicy, error) {
	config, err := d.PolicyConfig()
	if err != nil {
		return nil, err
	}

	policy, err := agency.NewSingleRoutePolicy(config)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", d.Identifier, err)
	}

	return policy, nil
}
