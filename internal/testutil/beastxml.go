// Package testutil provides shared test fixtures for the whip packages:
// BEAST XML job documents and beast -beagle_info resource reports.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// JobSpec describes a synthetic BEAST XML job.
type JobSpec struct {
	Taxa        int    // number of taxon/sequence pairs
	Sequences   int    // number of sequences; -1 means same as Taxa
	ChainLength int64  // 0 omits the mcmc element
	ScreenLog   bool   // include <log id="screenLog">
	LogStem     string // stem for fileLog/logTree fileName attributes; "" omits them
	Dimension   bool   // include parameters carrying dimension="<Taxa>"
	OmitTaxa    bool
	OmitAlign   bool
}

// DefaultJob is a complete, splittable and benchmarkable job.
func DefaultJob(taxa int) JobSpec {
	return JobSpec{
		Taxa:        taxa,
		Sequences:   -1,
		ChainLength: 100000,
		ScreenLog:   true,
		LogStem:     "beast",
		Dimension:   true,
	}
}

// BeastXML renders spec as a BEAST XML document.
func BeastXML(spec JobSpec) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" standalone=\"yes\"?>\n<beast>\n")

	if !spec.OmitTaxa {
		b.WriteString("\t<taxa id=\"taxa\">\n")
		for i := 1; i <= spec.Taxa; i++ {
			fmt.Fprintf(&b, "\t\t<taxon id=\"seq%d\"/>\n", i)
		}
		b.WriteString("\t</taxa>\n")
	}

	if !spec.OmitAlign {
		seqs := spec.Sequences
		if seqs < 0 {
			seqs = spec.Taxa
		}
		b.WriteString("\t<alignment id=\"alignment\" dataType=\"nucleotide\">\n")
		for i := 1; i <= seqs; i++ {
			fmt.Fprintf(&b, "\t\t<sequence><taxon idref=\"seq%d\"/>ATGC</sequence>\n", i)
		}
		b.WriteString("\t</alignment>\n")
	}

	if spec.Dimension {
		fmt.Fprintf(&b, "\t<parameter id=\"skyride.logPopSize\" dimension=\"%d\" value=\"3.95\"/>\n", spec.Taxa)
		fmt.Fprintf(&b, "\t<groupSizes><parameter id=\"skyride.groupSize\" dimension=\"%d\"/></groupSizes>\n", spec.Taxa)
	}

	if spec.ChainLength > 0 || spec.ScreenLog || spec.LogStem != "" {
		if spec.ChainLength > 0 {
			fmt.Fprintf(&b, "\t<mcmc id=\"mcmc\" chainLength=\"%d\" autoOptimize=\"true\">\n", spec.ChainLength)
		} else {
			b.WriteString("\t<mcmc id=\"mcmc\">\n")
		}
		if spec.ScreenLog {
			b.WriteString("\t\t<log id=\"screenLog\" logEvery=\"10000\"/>\n")
		}
		if spec.LogStem != "" {
			fmt.Fprintf(&b, "\t\t<log id=\"fileLog\" logEvery=\"10000\" fileName=\"%s.log\"/>\n", spec.LogStem)
			fmt.Fprintf(&b, "\t\t<logTree id=\"treeFileLog\" logEvery=\"10000\" fileName=\"%s.trees\"/>\n", spec.LogStem)
		}
		b.WriteString("\t</mcmc>\n")
	}

	b.WriteString("</beast>\n")
	return b.String()
}

// WriteJob writes the rendered spec to dir/name and returns the path.
func WriteJob(t testing.TB, dir, name string, spec JobSpec) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(BeastXML(spec)), 0o644); err != nil {
		t.Fatalf("writing job fixture: %v", err)
	}
	return path
}
