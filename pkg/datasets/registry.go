package datasets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/util"
	"gopkg.in/yaml.v3"
)

const defaultDataSourcesPath = "data/datasources/"

var ErrDatasetNotFound = errors.New("dataset could not be found")

var validate = validator.New()

func DataSourcesPath() string {
	return util.GetEnvironmentVariable("AGENCYTOOLS_DATASOURCES_PATH", defaultDataSourcesPath)
}

func LoadDataSets(directory string) ([]DataSet, error) {
	var registeredDatasets []DataSet

	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() {
				return nil
			}

			extension := filepath.Ext(path)
			if extension != ".yaml" && extension != ".yml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading datasource file")

			datasourceYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			datasets, err := DecodeDataSources(datasourceYaml)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			registeredDatasets = append(registeredDatasets, datasets...)

			return nil
		})
	if err != nil {
		return nil, err
	}

	return registeredDatasets, nil
}

// DecodeDataSources reads every document in a multi-document yaml stream
func DecodeDataSources(datasourceYaml []byte) ([]DataSet, error) {
	var registeredDatasets []DataSet

	decoder := yaml.NewDecoder(bytes.NewReader(datasourceYaml))

	for {
		var datasource DataSource
		err := decoder.Decode(&datasource)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		for _, dataset := range datasource.Datasets {
			dataset.Identifier = fmt.Sprintf("%s-%s", datasource.Identifier, dataset.Identifier)
			dataset.DataSourceRef = datasource.Identifier
			dataset.Provider = datasource.Provider

			if dataset.Format == "" {
				dataset.Format = DataSetFormatGTFSSchedule
			}
			if dataset.UnpackBundle == "" {
				dataset.UnpackBundle = BundleFormatNone
			}
			if dataset.ImportDestination == "" {
				dataset.ImportDestination = ImportDestinationDirectory
			}
			if dataset.SupportedObjects.IsZero() {
				dataset.SupportedObjects = AllObjects()
			}

			if err := dataset.Transforms.Compile(); err != nil {
				return nil, fmt.Errorf("dataset %s: %w", dataset.Identifier, err)
			}

			if err := validate.Struct(dataset); err != nil {
				return nil, fmt.Errorf("dataset %s: %w", dataset.Identifier, err)
			}

			registeredDatasets = append(registeredDatasets, dataset)
		}
	}

	return registeredDatasets, nil
}

func GetRegisteredDataSets() ([]DataSet, error) {
	return LoadDataSets(DataSourcesPath())
}

func GetDataset(identifier string) (DataSet, error) {
	registered, err := GetRegisteredDataSets()
	if err != nil {
		return DataSet{}, err
	}

	for _, dataset := range registered {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return DataSet{}, fmt.Errorf("%s: %w", identifier, ErrDatasetNotFound)
}
