package soap

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/beevik/etree"
)

// arrayType attribute patterns. An empty result uses the any-type zero-length
// sentinel instead of a zero-count typed array.
var (
	intArrayType    = regexp.MustCompile(`^xsd:int\[[0-9]+\]$`)
	recordArrayType = regexp.MustCompile(`^xsd:ur-type\[[0-9]+\]$`)
)

const emptyArrayType = "xsd:anyType[0]"

// parseEnvelope parses the response text and validates the envelope and body,
// returning the body element.
func parseEnvelope(text string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrMalformedDocument)
	}
	if root.Tag != "Envelope" || root.NamespaceURI() != NamespaceEnvelope {
		return nil, fmt.Errorf("%w: root element is not a soap:Envelope", ErrStructureMismatch)
	}

	body := root.SelectElement("Body")
	if body == nil {
		return nil, fmt.Errorf("%w: soap:Body", ErrMissingElement)
	}
	if body.NamespaceURI() != NamespaceEnvelope {
		return nil, fmt.Errorf("%w: namespace for soap:Body is %q", ErrStructureMismatch, body.NamespaceURI())
	}
	return body, nil
}

// UnwrapResponse validates the envelope of a successful response and returns
// the <method>Response payload element for projection.
func UnwrapResponse(text, method string) (*etree.Element, error) {
	body, err := parseEnvelope(text)
	if err != nil {
		return nil, err
	}

	name := method + "Response"
	resp := body.SelectElement(name)
	if resp == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, name)
	}
	return resp, nil
}

// ParseFault decodes the SOAP fault carried by an error response. Fault code
// and fault string are mandatory; actor and detail are optional.
func ParseFault(text string) (*Fault, error) {
	body, err := parseEnvelope(text)
	if err != nil {
		return nil, err
	}

	fault := body.SelectElement("Fault")
	if fault == nil {
		return nil, fmt.Errorf("%w: soap:Fault", ErrMissingElement)
	}

	code := elementText(fault.SelectElement("faultcode"))
	if code == "" {
		return nil, fmt.Errorf("%w: faultcode", ErrMissingField)
	}
	message := elementText(fault.SelectElement("faultstring"))
	if message == "" {
		return nil, fmt.Errorf("%w: faultstring", ErrMissingField)
	}

	return &Fault{
		Code:    code,
		Message: message,
		Actor:   elementText(fault.SelectElement("faultactor")),
		Detail:  elementText(fault.SelectElement("detail")),
	}, nil
}

// selectArray locates the soapenc:Array child of a response payload and
// validates its namespace and arrayType attribute against the given pattern.
func selectArray(parent *etree.Element, typePattern *regexp.Regexp) (*etree.Element, error) {
	arr := parent.SelectElement("Array")
	if arr == nil {
		return nil, fmt.Errorf("%w: soapenc:Array", ErrMissingElement)
	}
	if arr.NamespaceURI() != NamespaceEncoding {
		return nil, fmt.Errorf("%w: namespace for soapenc:Array is %q", ErrStructureMismatch, arr.NamespaceURI())
	}

	arrayType := arr.SelectAttrValue("arrayType", "")
	if arrayType == "" {
		return nil, fmt.Errorf("%w: soapenc:Array has no arrayType attribute", ErrStructureMismatch)
	}
	if !typePattern.MatchString(arrayType) && arrayType != emptyArrayType {
		return nil, fmt.Errorf("%w: unexpected arrayType %q", ErrStructureMismatch, arrayType)
	}
	return arr, nil
}

// decodeBugIDs collects the integer item children of an array element in
// document order. Items whose text does not parse as an integer are skipped.
func decodeBugIDs(parent *etree.Element) []BugID {
	ids := []BugID{}
	for _, item := range parent.ChildElements() {
		if item.Tag != "item" {
			continue
		}
		n, err := strconv.ParseInt(item.Text(), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, BugID(n))
	}
	return ids
}

// parseBugIDArrayResponse unwraps a response whose payload is a single
// integer array, shared by get_bugs and newest_bugs.
func parseBugIDArrayResponse(text, method string) ([]BugID, error) {
	resp, err := UnwrapResponse(text, method)
	if err != nil {
		return nil, err
	}
	arr, err := selectArray(resp, intArrayType)
	if err != nil {
		return nil, err
	}
	return decodeBugIDs(arr), nil
}

// ParseNewestBugsResponse decodes a newest_bugs response into bug IDs,
// ordered newest first.
func ParseNewestBugsResponse(text string) ([]BugID, error) {
	return parseBugIDArrayResponse(text, "newest_bugs")
}

// ParseGetBugsResponse decodes a get_bugs search response into bug IDs.
func ParseGetBugsResponse(text string) ([]BugID, error) {
	return parseBugIDArrayResponse(text, "get_bugs")
}

// ParseGetUsertagResponse decodes a get_usertag response. The wrapper's child
// element names are the tag names; each child holds the tagged bug IDs.
func ParseGetUsertagResponse(text string) (map[string][]BugID, error) {
	resp, err := UnwrapResponse(text, "get_usertag")
	if err != nil {
		return nil, err
	}

	container := resp.SelectElement(hashWrapperTag)
	if container == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, hashWrapperTag)
	}

	tags := make(map[string][]BugID)
	for _, child := range container.ChildElements() {
		tags[child.Tag] = decodeBugIDs(child)
	}
	return tags, nil
}

// elementText returns the text content of an element, or "" if the element is
// nil. An empty element is indistinguishable from an absent one.
func elementText(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return e.Text()
}
