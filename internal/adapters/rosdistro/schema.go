package rosdistro

import "gopkg.in/yaml.v3"

// indexFile is the REP-143 index.yaml document.
type indexFile struct {
	Type          string                       `yaml:"type"`
	Version       int                          `yaml:"version"`
	Distributions map[string]indexDistribution `yaml:"distributions"`
}

type indexDistribution struct {
	Distribution stringList `yaml:"distribution"`
}

// distributionFile is the REP-143 distribution.yaml document.
type distributionFile struct {
	Type         string                    `yaml:"type"`
	Version      int                       `yaml:"version"`
	Repositories map[string]repositoryFile `yaml:"repositories"`
}

type repositoryFile struct {
	Release *releaseFile `yaml:"release"`
}

type releaseFile struct {
	Packages []string          `yaml:"packages"`
	Tags     map[string]string `yaml:"tags"`
	URL      string            `yaml:"url"`
	Version  string            `yaml:"version"`
}

// stringList decodes either a single string or a list of strings.
type stringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *stringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = stringList{node.Value}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}
