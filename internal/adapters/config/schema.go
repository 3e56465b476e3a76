package config

// File represents the structure of the stylecache.yaml configuration file.
type File struct {
	Version  string         `yaml:"version"`
	Root     string         `yaml:"root"`
	Cache    CacheDTO       `yaml:"cache"`
	Mounts   []MountDTO     `yaml:"mounts"`
	Compiler CompilerDTO    `yaml:"compiler"`
	Output   OutputDTO      `yaml:"output"`
	Handles  HandlesDTO     `yaml:"handles"`
	Template TemplateDTO    `yaml:"template"`
	Watch    WatchDTO       `yaml:"watch"`
	Extra    map[string]any `yaml:",inline"`
}

// CacheDTO configures where compiled artifacts are written and served from.
type CacheDTO struct {
	Dir string `yaml:"dir"`
	URL string `yaml:"url"`
}

// MountDTO maps a public URL prefix onto a local directory.
type MountDTO struct {
	URL string `yaml:"url"`
	Dir string `yaml:"dir"`
}

// CompilerDTO configures the preprocessor.
type CompilerDTO struct {
	Binary   string `yaml:"binary"`
	Style    string `yaml:"style"`
	Identity string `yaml:"identity"`
	Timeout  string `yaml:"timeout"`
}

// OutputDTO configures post-processing of compiled CSS.
type OutputDTO struct {
	Minify bool `yaml:"minify"`
}

// HandlesDTO configures handle derivation.
type HandlesDTO struct {
	Qualified bool `yaml:"qualified"`
}

// TemplateDTO configures templated sources.
type TemplateDTO struct {
	Vars map[string]string `yaml:"vars"`
}

// WatchDTO configures watch mode.
type WatchDTO struct {
	Debounce string `yaml:"debounce"`
}
