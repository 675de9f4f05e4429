package command

import (
	"flag"
	"fmt"

	"github.com/m4gshm/enumfields/params"
)

func NewCheck() *Command {
	const (
		name = "check"
	)
	flagSet := flag.NewFlagSet(name, flag.ExitOnError)
	config, err := params.NewGeneratorConfig(flagSet)
	if err != nil {
		panic(err)
	}
	return New(
		name, "validates field annotations of a union type and prints the accessor signatures without writing files",
		flagSet,
		func(context *Context) error {
			_, accessors, err := context.Accessors(config)
			if err != nil {
				return err
			}
			for _, a := range accessors {
				if _, err := fmt.Fprintln(context.Out, a.Signature()); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
