// Package namelist builds and writes the parameter namelists read by the
// mixed-layer model.
//
// # Reading Guide
//
//   - namelist.go: the typed Namelist record and its validation
//   - cases.go: the closed set of simulation cases and their builders
//   - writer.go: UUID stamping, the diagnostic dump, and the on-disk encoding
//   - float.go: the float text form the model's reader expects
//   - format.go: the json and yaml encodings, Encode, and the strict Load
//
// A run is Build (or BuildByName) followed by Writer.Write. Load reads a
// written file back into a Namelist.
package namelist
