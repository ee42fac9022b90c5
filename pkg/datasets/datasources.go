package datasets

type DataSource struct {
	Identifier string    `yaml:"Identifier"`
	Region     string    `yaml:"Region"`
	Provider   Provider  `yaml:"Provider"`
	Datasets   []DataSet `yaml:"Datasets"`
}
