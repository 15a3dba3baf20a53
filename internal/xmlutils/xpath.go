// Package xmlutils provides helpers for inspecting generated OFX documents.
// The SGML body of an OFX 1.02 file is well-formed XML once the plain-text
// prolog is stripped, so XPath works on it.
package xmlutils

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// ParseOFX parses the XML body of an OFX document, skipping the prolog lines
// before the <OFX> root element.
func ParseOFX(doc string) (*xmlpath.Node, error) {
	idx := strings.Index(doc, "<OFX>")
	if idx < 0 {
		return nil, fmt.Errorf("no <OFX> element found in document")
	}

	root, err := xmlpath.Parse(strings.NewReader(doc[idx:]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX body: %w", err)
	}

	return root, nil
}

// LoadOFXFile reads an OFX file and returns the root node of its XML body.
func LoadOFXFile(path string) (*xmlpath.Node, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	return ParseOFX(string(data))
}

// ExtractFromXML extracts values from an XML node using an XPath expression
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}

// GetOrEmpty returns the value at the specified index in a slice, or an empty string if the index is out of bounds
func GetOrEmpty(slice []string, index int) string {
	if index < len(slice) {
		return slice[index]
	}
	return ""
}
