// Package selftest runs checks of the xtext operations inside a running
// program, e.g. to verify a build on a target system without the Go test
// tooling.
//
// Checks are grouped into named units that are kept in a Registry. Units are
// selected by name patterns in doublestar syntax, i.e. "text/*" selects all
// units in the text group:
//
//	units, err := selftest.Default.Select("text/*")
//	if err != nil {
//		return err
//	}
//	log, err := selftest.Runner{FailLimit: 1}.Run(units)
//	fmt.Print(log)
//
// Each unit yields one log entry, either
//
//	text/trim
//		Success.
//
// or
//
//	text/trim
//		Failure: <details>
package selftest
