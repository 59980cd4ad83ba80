package config

import "go.trai.ch/runner/internal/core/domain"

// Configfile represents the structure of the config.yaml file below the runner root.
// Pointer fields distinguish an explicit false or empty value from an omitted key.
type Configfile struct {
	Edition     *string  `yaml:"edition"`
	Static      *bool    `yaml:"static"`
	KitchenSink []string `yaml:"kitchen_sink"`
	BuildDocs   *bool    `yaml:"build_docs"`
	Compiler    *string  `yaml:"compiler"`
	BuildTool   *string  `yaml:"build_tool"`
}

// apply overlays the keys present in the file onto s.
func (c *Configfile) apply(s *domain.Settings) {
	if c.Edition != nil {
		s.Edition = *c.Edition
	}
	if c.Static != nil {
		s.Static = *c.Static
	}
	if c.KitchenSink != nil {
		s.KitchenSink = append([]string(nil), c.KitchenSink...)
	}
	if c.BuildDocs != nil {
		s.BuildDocs = *c.BuildDocs
	}
	if c.Compiler != nil && *c.Compiler != "" {
		s.Compiler = *c.Compiler
	}
	if c.BuildTool != nil && *c.BuildTool != "" {
		s.BuildTool = *c.BuildTool
	}
}
