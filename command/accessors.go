package command

import (
	"flag"
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"github.com/m4gshm/enumfields/generator"
	"github.com/m4gshm/enumfields/logger"
	"github.com/m4gshm/enumfields/params"
)

func NewAccessors() *Command {
	const (
		name = "accessors"
	)
	flagSet := flag.NewFlagSet(name, flag.ExitOnError)
	config, err := params.NewGeneratorConfig(flagSet)
	if err != nil {
		panic(err)
	}
	return New(
		name, "generates functions that access fields common to all variants of a union type",
		flagSet,
		func(context *Context) error {
			model, accessors, err := context.Accessors(config)
			if err != nil {
				return err
			}
			outFile, err := context.OutputFile(model)
			if err != nil {
				return err
			}
			pkg := model.Package()
			g := generator.New(params.Name, context.Args, pkg.Path(), pkg.Name(), *context.Config.OutBuildTags)
			g.Doc = *config.Doc
			g.Nolint = *config.Nolint
			g.AddImports(model.Imports)
			g.AddAccessors(accessors...)

			src, err := g.FormatSrc()
			if err != nil {
				return err
			}
			const userWriteOtherRead = fs.FileMode(0644)
			if err := os.WriteFile(outFile, src, userWriteOtherRead); err != nil {
				return errors.Wrap(err, "write output")
			}
			logger.Debugf("%d accessors of %s written to %s", g.Len(), model.TypeName(), outFile)
			return nil
		},
	)
}
