package splitter

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/whip-phylo/whip/beast"
)

// SetDimensions sets every <parameter dimension="..."> in doc to perSplit-1.
// Returns the number of parameters rewritten.
func SetDimensions(doc *etree.Document, perSplit int) int {
	params := doc.FindElements("//parameter[@dimension]")
	for _, p := range params {
		p.CreateAttr("dimension", strconv.Itoa(perSplit-1))
	}
	return len(params)
}

// SetFileNames replaces the stem of every fileName attribute in doc with the
// stem of name, keeping the attribute's directory and extension.
// A document without any fileName attribute is rejected.
func SetFileNames(doc *etree.Document, name string) error {
	elements := doc.FindElements("//*[@fileName]")
	if len(elements) == 0 {
		return &beast.InvalidInputError{Reason: "input xml does not contain any fileName attributes"}
	}
	newStem := stem(name)
	for _, el := range elements {
		old := el.SelectAttrValue("fileName", "")
		base := filepath.Base(old)
		dir := strings.TrimSuffix(old, base)
		el.CreateAttr("fileName", dir+newStem+filepath.Ext(base))
	}
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
