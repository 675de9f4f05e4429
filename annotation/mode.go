package annotation

// AccessMode determines how a generated accessor reaches the field: by copy, by pointer or by consuming the union value.
type AccessMode int

const (
	ReadOnly AccessMode = iota
	Mutable
	Owning
)

const (
	ReadOnlyKeyword = "ref"
	MutableKeyword  = "mut"
	OwningKeyword   = "own"
)

var (
	modeNames    = [...]string{ReadOnly: "read-only", Mutable: "mutable", Owning: "owning"}
	modeKeywords = [...]string{ReadOnly: ReadOnlyKeyword, Mutable: MutableKeyword, Owning: OwningKeyword}
)

func (m AccessMode) String() string {
	if m.valid() {
		return modeNames[m]
	}
	return "unknown"
}

// Keyword returns the short name used in command line flags.
func (m AccessMode) Keyword() string {
	if m.valid() {
		return modeKeywords[m]
	}
	return ""
}

func (m AccessMode) valid() bool {
	return m >= ReadOnly && m <= Owning
}

// Modes returns all access modes.
func Modes() []AccessMode {
	return []AccessMode{ReadOnly, Mutable, Owning}
}

// ModeByKeyword returns the access mode by its flag keyword.
func ModeByKeyword(keyword string) (AccessMode, bool) {
	for _, m := range Modes() {
		if m.Keyword() == keyword {
			return m, true
		}
	}
	return 0, false
}
