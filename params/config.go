package params

import (
	"flag"

	"github.com/m4gshm/flag/flagenum"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/enumfields/annotation"
	"github.com/m4gshm/enumfields/generator"
)

const (
	Name              = "enumfields"
	DefaultFileSuffix = "_" + Name + ".go"
)

func NewConfig(flagSet *flag.FlagSet) *Config {
	return &Config{
		Type:           flagSet.String("type", "", "union interface type name; must be set"),
		BuildTags:      multiVal(flagSet, "buildTag", []string{Name}, "include build tag"),
		Output:         flagSet.String("out", "", "output file name; default srcdir/<type>"+DefaultFileSuffix),
		PackagePattern: flagSet.String("package", ".", "used package"),
		OutBuildTags:   flagSet.String("outBuildTag", "", "add build tag to generated file"),
		Debug:          flagSet.Bool("debug", false, "enable debug logging"),
	}
}

type Config struct {
	Type           *string
	BuildTags      *[]string
	Output         *string
	PackagePattern *string
	OutBuildTags   *string
	Debug          *bool
}

type modeKeyword string

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

// GeneratorConfig holds the accessor generation flags of a command.
type GeneratorConfig struct {
	Nolint *bool
	Doc    *bool
	allow  *[]modeKeyword
	names  map[annotation.AccessMode]*string
}

func NewGeneratorConfig(flagSet *flag.FlagSet) (*GeneratorConfig, error) {
	keywords := slice.Convert(annotation.Modes(), func(m annotation.AccessMode) modeKeyword { return modeKeyword(m.Keyword()) })
	allow, err := flagenum.Multiple(flagSet, "allow", keywords, keywords, fromString[modeKeyword], toString[modeKeyword],
		"access modes allowed to generate; "+annotation.ReadOnlyKeyword+" - read-only, "+
			annotation.MutableKeyword+" - mutable, "+annotation.OwningKeyword+" - owning")
	if err != nil {
		return nil, err
	}
	return &GeneratorConfig{
		Nolint: flagSet.Bool("nolint", false, "add //nolint:all comment"),
		Doc:    flagSet.Bool("doc", false, "add doc comments to generated accessors"),
		allow:  allow,
		names: map[annotation.AccessMode]*string{
			annotation.ReadOnly: nameFlag(flagSet, annotation.ReadOnly, generator.DefaultReadOnlyName),
			annotation.Mutable:  nameFlag(flagSet, annotation.Mutable, generator.DefaultMutableName),
			annotation.Owning:   nameFlag(flagSet, annotation.Owning, generator.DefaultOwningName),
		},
	}, nil
}

func nameFlag(flagSet *flag.FlagSet, mode annotation.AccessMode, def string) *string {
	return flagSet.String(mode.Keyword()+"-name", def, mode.String()+" accessor name expression; variables: "+generator.NamingVars)
}

// AllowedModes returns the access modes selected by the -allow flag.
func (c *GeneratorConfig) AllowedModes() []annotation.AccessMode {
	return slice.ConvertOK(*c.allow, func(k modeKeyword) (annotation.AccessMode, bool) {
		return annotation.ModeByKeyword(string(k))
	})
}

func (c *GeneratorConfig) Naming() (*generator.Naming, error) {
	templates := map[annotation.AccessMode]string{}
	for mode, template := range c.names {
		templates[mode] = *template
	}
	return generator.NewNaming(templates)
}
