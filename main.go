package main

import (
	"flag"
	"fmt"
	"go/token"
	"log"
	"os"

	"github.com/m4gshm/enumfields/command"
	"github.com/m4gshm/enumfields/logger"
	"github.com/m4gshm/enumfields/model/util"
	"github.com/m4gshm/enumfields/params"
)

func usage() {
	out := os.Stderr
	_, _ = fmt.Fprintf(out, "Usage of "+params.Name+":\n")
	_, _ = fmt.Fprintf(out, "\t"+params.Name+" [flags] [command [command flags]]\n")
	_, _ = fmt.Fprintf(out, "\tdefault command: %s\n", command.Default)
	_, _ = fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
	command.PrintUsage()
}

func main() {
	log.SetPrefix(params.Name + ": ")
	log.SetFlags(0)

	config := params.NewConfig(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	logger.Init(*config.Debug)

	args := flag.Args()
	cmdName := command.Default
	if len(args) > 0 {
		cmdName, args = args[0], args[1:]
	}
	cmd := command.Get(cmdName)
	if cmd == nil {
		log.Printf("unknown command '%s'", cmdName)
		flag.Usage()
		os.Exit(2)
	}
	if rest, err := cmd.Parse(args); err != nil {
		log.Fatal(err)
	} else if len(rest) > 0 {
		log.Fatalf("unexpected arguments %v", rest)
	}

	if len(*config.Type) == 0 {
		log.Print("no type arg")
		flag.Usage()
		os.Exit(2)
	}

	fileSet := token.NewFileSet()
	pkgs, err := util.ExtractPackages(fileSet, *config.BuildTags, *config.PackagePattern)
	if err != nil {
		log.Fatal(err)
	}
	logger.Debugw("using", "type", *config.Type, "command", cmdName, "buildTags", *config.BuildTags)

	context := &command.Context{
		Config:   config,
		FileSet:  fileSet,
		Packages: pkgs,
		Args:     os.Args[1:],
		Out:      os.Stdout,
	}
	if err := cmd.Run(context); err != nil {
		log.Fatal(err)
	}
}
