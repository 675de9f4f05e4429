package params

import (
	"flag"
	"fmt"
	"strings"
)

// multiflag collects repeated or comma separated flag values, rejecting duplicates.
type multiflag struct {
	name   string
	values []string
	seen   map[string]struct{}
	isSet  bool
}

func (f *multiflag) String() string {
	return strings.Join(f.values, ",")
}

func (f *multiflag) Set(s string) error {
	if !f.isSet {
		f.values, f.seen, f.isSet = []string{}, map[string]struct{}{}, true
	}
	for _, value := range strings.Split(s, ",") {
		if value = strings.TrimSpace(value); len(value) == 0 {
			continue
		} else if _, ok := f.seen[value]; ok {
			return fmt.Errorf("duplicated value %s of parameter %s", value, f.name)
		}
		f.values = append(f.values, value)
		f.seen[value] = struct{}{}
	}
	return nil
}

func (f *multiflag) Get() any { return f.values }

func multiVal(flagSet *flag.FlagSet, name string, defValues []string, usage string) *[]string {
	values := &multiflag{name: name, values: defValues}
	flagSet.Var(values, name, usage)
	return &values.values
}
