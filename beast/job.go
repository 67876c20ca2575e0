package beast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ScreenLogID is the id BEAST gives the log element that prints the state
// table (and the hours/million states column) to the console.
const ScreenLogID = "screenLog"

// Job is a parsed BEAST XML input document.
// The underlying tree is mutable; splitter rewrites it in place.
type Job struct {
	Path string
	Doc  *etree.Document
}

// TaxonSequence pairs a <taxa><taxon> element with the <alignment><sequence>
// at the same position.
type TaxonSequence struct {
	Taxon    *etree.Element
	Sequence *etree.Element
}

// LoadJob reads and parses the BEAST XML file at path.
func LoadJob(path string) (*Job, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading job xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, &InvalidInputError{Path: path, Reason: "document has no root element"}
	}
	return &Job{Path: path, Doc: doc}, nil
}

// ChainLength returns the first chainLength attribute found in the document,
// which is the total number of MCMC states the job is configured to run.
func (j *Job) ChainLength() (int64, error) {
	el := j.Doc.FindElement("//*[@chainLength]")
	if el == nil {
		return 0, &InvalidInputError{Path: j.Path, Reason: "missing chainLength attribute"}
	}
	raw := el.SelectAttrValue("chainLength", "")
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &InvalidInputError{Path: j.Path, Reason: fmt.Sprintf("chainLength %q is not an integer", raw)}
	}
	return n, nil
}

// HasScreenLog reports whether the document declares a screen log, either as
// <log id="screenLog"> or as a <screenLog> element.
func (j *Job) HasScreenLog() bool {
	if j.Doc.FindElement("//*[@id='"+ScreenLogID+"']") != nil {
		return true
	}
	return j.Doc.FindElement("//"+ScreenLogID) != nil
}

// Taxa returns the root-level <taxa> container.
func (j *Job) Taxa() (*etree.Element, error) {
	return j.container("taxa")
}

// Alignment returns the root-level <alignment> container.
func (j *Job) Alignment() (*etree.Element, error) {
	return j.container("alignment")
}

func (j *Job) container(tag string) (*etree.Element, error) {
	el := j.Doc.Root().SelectElement(tag)
	if el == nil {
		return nil, &InvalidInputError{Path: j.Path, Reason: "missing " + tag + " tag"}
	}
	return el, nil
}

// TaxonSequences pairs every taxon with its aligned sequence, preserving
// document order. Both containers must exist and hold the same number of
// children.
func (j *Job) TaxonSequences() ([]TaxonSequence, error) {
	taxa, err := j.Taxa()
	if err != nil {
		return nil, err
	}
	alignment, err := j.Alignment()
	if err != nil {
		return nil, err
	}
	ids := taxa.SelectElements("taxon")
	seqs := alignment.SelectElements("sequence")
	if len(ids) != len(seqs) {
		return nil, &InvalidInputError{
			Path:   j.Path,
			Reason: fmt.Sprintf("%d alignment sequences but %d taxa taxons", len(seqs), len(ids)),
		}
	}
	pairs := make([]TaxonSequence, len(ids))
	for i := range ids {
		pairs[i] = TaxonSequence{Taxon: ids[i], Sequence: seqs[i]}
	}
	return pairs, nil
}
