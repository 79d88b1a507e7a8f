// Package compileinfoprint is imported for the side effect of printing
// the build provenance banner to os.Stderr at startup.
package compileinfoprint

import "github.com/carbocation/fraction/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
