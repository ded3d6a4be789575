package namelist

import "fmt"

// Case identifies a predefined simulation case.
type Case int

const (
	// Isdac is the ISDAC Arctic mixed-phase stratocumulus case.
	Isdac Case = iota
)

// allCases lists every Case in declaration order.
var allCases = []Case{Isdac}

// caseNames maps each Case to the token accepted on the command line.
// Tokens share the command line with the CLI's subcommands (cases, show,
// help, completion) and must not collide with them.
var caseNames = map[Case]string{
	Isdac: "Isdac",
}

// Config carries builder inputs that are not fixed by the case.
type Config struct {
	// OutputRoot is written to stats_io.output_root.
	OutputRoot string
}

type builder func(cfg Config) *Namelist

// builders is the static dispatch from Case to its namelist producer.
// Every Case in caseNames must have an entry here.
var builders = map[Case]builder{
	Isdac: isdac,
}

// String returns the command-line token for c.
func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// Cases returns every known case in declaration order.
func Cases() []Case {
	return append([]Case(nil), allCases...)
}

// ParseCase resolves a command-line token to a Case. Matching is exact.
func ParseCase(name string) (Case, error) {
	for c, token := range caseNames {
		if token == name {
			return c, nil
		}
	}
	return 0, &UnknownCaseError{Name: name}
}

// Build returns a freshly built namelist for c. The returned namelist has no
// UUID; Writer.Write assigns one.
func Build(c Case, cfg Config) (*Namelist, error) {
	b, ok := builders[c]
	if !ok {
		return nil, &UnknownCaseError{Name: c.String()}
	}
	return b(cfg), nil
}

// BuildByName is ParseCase followed by Build.
func BuildByName(name string, cfg Config) (*Namelist, error) {
	c, err := ParseCase(name)
	if err != nil {
		return nil, err
	}
	return Build(c, cfg)
}

func isdac(cfg Config) *Namelist {
	return &Namelist{
		Initial: Initial{
			SST:        265.0,
			DTi:        5.0,
			RH0:        0.8,
			Gamma:      5.0 / 1000,
			RH:         0.6,
			ZTop:       820.0,
			DSST:       0.0,
			Divergence: 5.0e-6,
			DivFrac:    1.0,
		},
		Grid: Grid{
			Dz: 5.0,
		},
		Entrainment: Entrainment{
			A:  0.86,
			W0: 0.0002,
		},
		Radiation: Radiation{
			Frequency:     300.0,
			NBuffer:       15, // tied to dz
			StretchFactor: 1.5,
		},
		TimeStepping: TimeStepping{
			T:         0.0,
			DtInitial: 300.0,
			TMax:      3600.0 * 24.0,
		},
		StatsIO: StatsIO{
			Frequency:  300.0,
			OutputRoot: cfg.OutputRoot,
		},
		Meta: Meta{
			SimName:  "IsdacMLM_rh",
			CaseName: "IsdacMLM",
		},
	}
}
