package soap

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// argKind discriminates the supported argument shapes.
type argKind int

const (
	argString argKind = iota
	argStringList
	argBugList
)

// Arg is one encodable RPC argument. Construct values with StringArg,
// StringListArg, or BugListArg; the zero value encodes as an empty string.
type Arg struct {
	kind argKind
	str  string
	strs []string
	ids  []BugID
}

// StringArg encodes a single text value with no type annotation.
func StringArg(s string) Arg {
	return Arg{kind: argString, str: s}
}

// StringListArg encodes a string array with an open-ended element count.
func StringListArg(items []string) Arg {
	return Arg{kind: argStringList, strs: items}
}

// BugListArg encodes an integer array carrying its exact element count.
func BugListArg(ids []BugID) Arg {
	return Arg{kind: argBugList, ids: ids}
}

// encode appends the argument to call under the next positional argN name,
// based on how many arguments the call element already holds.
func (a Arg) encode(call *etree.Element) {
	name := fmt.Sprintf("arg%d", len(call.ChildElements()))
	switch a.kind {
	case argStringList:
		arr := call.CreateElement(name)
		arr.CreateAttr("xmlns:soapenc", NamespaceEncoding)
		arr.CreateAttr("xsi:type", "soapenc:Array")
		arr.CreateAttr("soapenc:arrayType", "xsd:string[]")
		for _, s := range a.strs {
			item := arr.CreateElement("item")
			item.CreateAttr("xsi:type", "xsd:string")
			item.SetText(s)
		}
	case argBugList:
		arr := call.CreateElement(name)
		arr.CreateAttr("xmlns:soapenc", NamespaceEncoding)
		arr.CreateAttr("xsi:type", "soapenc:Array")
		arr.CreateAttr("soapenc:arrayType", fmt.Sprintf("xsd:int[%d]", len(a.ids)))
		for _, id := range a.ids {
			item := arr.CreateElement("item")
			item.CreateAttr("xsi:type", "xsd:int")
			item.SetText(strconv.Itoa(int(id)))
		}
	default:
		call.CreateElement(name).SetText(a.str)
	}
}

// newRequest builds the envelope shell: XML declaration, soap:Envelope with
// namespace declarations, an empty soap:Header, and a soap:Body holding a
// single unqualified method element. The returned call element is the method
// element, ready to receive arguments.
func newRequest(method string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", NamespaceEnvelope)
	env.CreateAttr("xmlns:xsi", NamespaceXSI)
	env.CreateAttr("xmlns:xsd", NamespaceXSD)
	env.CreateElement("soap:Header")
	body := env.CreateElement("soap:Body")
	return doc, body.CreateElement(method)
}

// NewRequest builds a request document for an arbitrary method. The arguments
// are encoded in input order as arg0..argN-1; no validation of argument count
// or shape is performed.
func NewRequest(method string, args ...Arg) *etree.Document {
	doc, call := newRequest(method)
	for _, a := range args {
		a.encode(call)
	}
	return doc
}

// NewestBugsRequest builds a newest_bugs request. The amount parameter is
// named rather than positional, matching the server's calling convention.
func NewestBugsRequest(amount int) *etree.Document {
	doc, call := newRequest("newest_bugs")
	call.CreateElement("amount").SetText(strconv.Itoa(amount))
	return doc
}

// GetBugLogRequest builds a get_bug_log request for one bug.
func GetBugLogRequest(id BugID) *etree.Document {
	doc, call := newRequest("get_bug_log")
	num := call.CreateElement("bugnumber")
	num.CreateAttr("xsi:type", "xsd:int")
	num.SetText(strconv.Itoa(int(id)))
	return doc
}

// GetStatusRequest builds a get_status request for the given bugs.
func GetStatusRequest(ids []BugID) *etree.Document {
	return NewRequest("get_status", BugListArg(ids))
}

// GetUsertagRequest builds a get_usertag request for the tags a user has
// applied. With no tags, the server returns all of the user's tags.
func GetUsertagRequest(email string, tags ...string) *etree.Document {
	args := make([]Arg, 0, len(tags)+1)
	args = append(args, StringArg(email))
	for _, tag := range tags {
		args = append(args, StringArg(tag))
	}
	return NewRequest("get_usertag", args...)
}

// GetBugsRequest builds a get_bugs search request from a query.
func GetBugsRequest(query *SearchQuery) *etree.Document {
	return NewRequest("get_bugs", query.args()...)
}
