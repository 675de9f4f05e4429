package unique

import (
	"strconv"

	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/m4gshm/gollections/seq"
)

// NewNamesWith creates a generator of variable names that do not clash with each other.
func NewNamesWith(opts ...func(*Names)) *Names {
	u := &Names{}
	for _, o := range opts {
		o(u)
	}
	return u
}

// PreInit reserves names.
func PreInit(names ...string) func(*Names) {
	return func(un *Names) {
		seq.ForEach(seq.Of(names...), un.Add)
	}
}

type Names struct {
	uniques *mutable.Set[string]
}

// Get returns the name or the name with the first free numeric suffix and reserves it.
func (u *Names) Get(name string) string {
	if u == nil {
		return name
	}
	if u.uniques == nil {
		u.uniques = mutable.NewSet[string]()
	}
	candidate := name
	for i := 1; !u.uniques.AddNew(candidate); i++ {
		candidate = name + strconv.Itoa(i)
	}
	return candidate
}

func (u *Names) Add(name string) {
	u.Get(name)
}
