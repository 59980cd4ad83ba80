package domain

// Settings is the resolved runner configuration.
type Settings struct {
	Layout      Layout
	Edition     string
	Static      bool
	KitchenSink []string
	BuildDocs   bool
	Compiler    string
	BuildTool   string
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings(root string) Settings {
	return Settings{
		Layout:      NewLayout(root),
		Edition:     "2021",
		KitchenSink: append([]string(nil), DefaultKitchenSink...),
		BuildDocs:   true,
		Compiler:    "rustc",
		BuildTool:   "cargo",
	}
}
