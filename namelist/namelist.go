package namelist

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Namelist is the full parameter set for one simulation run.
// Fields at every level are declared in byte-wise key order so that every
// encoding of a Namelist is key-sorted.
type Namelist struct {
	Entrainment  Entrainment  `json:"entrainment" yaml:"entrainment"`
	Grid         Grid         `json:"grid" yaml:"grid"`
	Initial      Initial      `json:"initial" yaml:"initial"`
	Meta         Meta         `json:"meta" yaml:"meta"`
	Radiation    Radiation    `json:"radiation" yaml:"radiation"`
	StatsIO      StatsIO      `json:"stats_io" yaml:"stats_io"`
	TimeStepping TimeStepping `json:"time_stepping" yaml:"time_stepping"`
}

// Entrainment holds the entrainment closure coefficients.
type Entrainment struct {
	A  Float `json:"a" yaml:"a"`
	W0 Float `json:"w0" yaml:"w0"`
}

// Grid holds the vertical grid spacing.
type Grid struct {
	Dz Float `json:"dz" yaml:"dz"` // m
}

// Initial holds the initial and boundary conditions.
type Initial struct {
	SST        Float `json:"SST" yaml:"SST"`               // surface temperature, K
	DSST       Float `json:"dSST" yaml:"dSST"`             // SST perturbation, K
	DTi        Float `json:"dTi" yaml:"dTi"`               // inversion temperature jump, K
	DivFrac    Float `json:"div_frac" yaml:"div_frac"`     // fractional divergence rate
	Divergence Float `json:"divergence" yaml:"divergence"` // large-scale divergence, 1/s
	Gamma      Float `json:"gamma" yaml:"gamma"`           // free-tropospheric lapse rate, K/m
	RH         Float `json:"rh" yaml:"rh"`                 // free-tropospheric relative humidity
	RH0        Float `json:"rh0" yaml:"rh0"`               // surface relative humidity
	ZTop       Float `json:"z_top" yaml:"z_top"`           // mixed-layer top, m
}

// Meta identifies the run. UUID is empty until the namelist is written.
type Meta struct {
	CaseName string `json:"casename" yaml:"casename"`
	SimName  string `json:"simname" yaml:"simname"`
	UUID     string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
}

// Radiation holds the radiation call frequency and buffer-layer settings.
type Radiation struct {
	Frequency     Float `json:"frequency" yaml:"frequency"`
	NBuffer       int   `json:"n_buffer" yaml:"n_buffer"`
	StretchFactor Float `json:"stretch_factor" yaml:"stretch_factor"`
}

// StatsIO controls statistics output.
type StatsIO struct {
	Frequency  Float  `json:"frequency" yaml:"frequency"`
	OutputRoot string `json:"output_root" yaml:"output_root"`
}

// TimeStepping holds the model clock settings, in seconds.
type TimeStepping struct {
	DtInitial Float `json:"dt_initial" yaml:"dt_initial"`
	T         Float `json:"t" yaml:"t"`
	TMax      Float `json:"t_max" yaml:"t_max"`
}

// FileName returns the name of the file the namelist is written to.
func (n *Namelist) FileName() string {
	return n.Meta.SimName + ".in"
}

// Validate checks that the namelist can be written: meta.simname must be a
// non-empty bare file name.
func (n *Namelist) Validate() error {
	name := n.Meta.SimName
	if strings.TrimSpace(name) == "" {
		return &MissingMetadataError{Field: "simname"}
	}
	if name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("meta.simname %q must be a bare file name", name)
	}
	return nil
}
