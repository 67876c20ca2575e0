package splitter

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/whip-phylo/whip/beast"
)

// Split divides the taxa of the BEAST XML at path into parts groups and writes
// one document per group next to the input, named split_<i><ext> with i
// starting at 1. Each document keeps everything from the input except the
// taxa and alignment, which hold only that group's pairs; dimension
// parameters and fileName attributes are rewritten to match.
//
// It returns the written paths. Fewer than parts files may be written, see
// Stride.
func Split(path string, parts int) ([]string, error) {
	job, err := beast.LoadJob(path)
	if err != nil {
		return nil, err
	}
	pairs, err := job.TaxonSequences()
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, &beast.InvalidInputError{Path: path, Reason: "no taxa to split"}
	}
	groups, err := Partition(pairs, parts)
	if err != nil {
		return nil, err
	}
	if len(groups) < parts {
		logrus.Warnf("%d taxa only fill %d of the %d requested files", len(pairs), len(groups), parts)
	}

	taxa, _ := job.Taxa()
	alignment, _ := job.Alignment()
	dir, ext := filepath.Dir(path), filepath.Ext(path)

	written := make([]string, 0, len(groups))
	for i, group := range groups {
		out := filepath.Join(dir, fmt.Sprintf("split_%d%s", i+1, ext))

		clearChildren(taxa)
		clearChildren(alignment)
		for _, p := range group {
			appendChild(taxa, p.Taxon)
			appendChild(alignment, p.Sequence)
		}
		closeContainer(taxa)
		closeContainer(alignment)

		SetDimensions(job.Doc, len(group))
		if err := SetFileNames(job.Doc, out); err != nil {
			var invalid *beast.InvalidInputError
			if errors.As(err, &invalid) {
				invalid.Path = path
			}
			return written, err
		}

		if err := job.Doc.WriteToFile(out); err != nil {
			return written, fmt.Errorf("writing %s: %w", out, err)
		}
		logrus.Infof("Wrote %s with %d taxa", out, len(group))
		written = append(written, out)
	}
	return written, nil
}

// clearChildren removes every child token of el, keeping its attributes.
func clearChildren(el *etree.Element) {
	for len(el.Child) > 0 {
		el.RemoveChildAt(len(el.Child) - 1)
	}
}

// appendChild adds child to el on its own indented line.
func appendChild(el, child *etree.Element) {
	el.CreateText("\n" + indent(el) + "\t")
	el.AddChild(child)
}

func closeContainer(el *etree.Element) {
	if len(el.Child) > 0 {
		el.CreateText("\n" + indent(el))
	}
}

func indent(el *etree.Element) string {
	s := ""
	for p := el.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
		s += "\t"
	}
	return s
}
