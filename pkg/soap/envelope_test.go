package soap

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

// callElement digs the method call element out of a request document and
// fails the test if the envelope shell is malformed.
func callElement(t *testing.T, doc *etree.Document, method string) *etree.Element {
	t.Helper()
	root := doc.Root()
	if root == nil {
		t.Fatal("request document has no root element")
	}
	if root.Tag != "Envelope" || root.Space != "soap" {
		t.Fatalf("root element is %s:%s, want soap:Envelope", root.Space, root.Tag)
	}
	body := root.SelectElement("Body")
	if body == nil {
		t.Fatal("request has no soap:Body")
	}
	children := body.ChildElements()
	if len(children) != 1 {
		t.Fatalf("soap:Body has %d children, want 1", len(children))
	}
	call := children[0]
	if call.Tag != method || call.Space != "" {
		t.Fatalf("call element is %s:%s, want unqualified %s", call.Space, call.Tag, method)
	}
	return call
}

func TestNewestBugsRequest(t *testing.T) {
	doc := NewestBugsRequest(10)

	root := doc.Root()
	if got := root.SelectAttrValue("xmlns:soap", ""); got != NamespaceEnvelope {
		t.Errorf("xmlns:soap = %q, want %q", got, NamespaceEnvelope)
	}
	if got := root.SelectAttrValue("xmlns:xsi", ""); got != NamespaceXSI {
		t.Errorf("xmlns:xsi = %q, want %q", got, NamespaceXSI)
	}
	if got := root.SelectAttrValue("xmlns:xsd", ""); got != NamespaceXSD {
		t.Errorf("xmlns:xsd = %q, want %q", got, NamespaceXSD)
	}

	children := root.ChildElements()
	if len(children) != 2 {
		t.Fatalf("envelope has %d children, want Header and Body", len(children))
	}
	if children[0].Tag != "Header" || children[0].Space != "soap" {
		t.Errorf("first envelope child is %s:%s, want soap:Header", children[0].Space, children[0].Tag)
	}
	if len(children[0].ChildElements()) != 0 {
		t.Error("soap:Header should be empty")
	}

	call := callElement(t, doc, "newest_bugs")
	amount := call.SelectElement("amount")
	if amount == nil {
		t.Fatal("newest_bugs call has no amount element")
	}
	if amount.Text() != "10" {
		t.Errorf("amount = %q, want %q", amount.Text(), "10")
	}
	if amount.SelectAttr("type") != nil {
		t.Error("amount should carry no type annotation")
	}
}

func TestGetBugLogRequest(t *testing.T) {
	doc := GetBugLogRequest(12345)

	call := callElement(t, doc, "get_bug_log")
	num := call.SelectElement("bugnumber")
	if num == nil {
		t.Fatal("get_bug_log call has no bugnumber element")
	}
	if num.Text() != "12345" {
		t.Errorf("bugnumber = %q, want %q", num.Text(), "12345")
	}
	if got := num.SelectAttrValue("xsi:type", ""); got != "xsd:int" {
		t.Errorf("bugnumber xsi:type = %q, want xsd:int", got)
	}
}

func TestNewRequest_PositionalNaming(t *testing.T) {
	doc := NewRequest("get_usertag",
		StringArg("debian-qa@lists.debian.org"),
		StringArg("orphaned"),
		StringArg("rfa"),
	)

	call := callElement(t, doc, "get_usertag")
	children := call.ChildElements()
	if len(children) != 3 {
		t.Fatalf("call has %d arguments, want 3", len(children))
	}
	wantNames := []string{"arg0", "arg1", "arg2"}
	wantTexts := []string{"debian-qa@lists.debian.org", "orphaned", "rfa"}
	for i, child := range children {
		if child.Tag != wantNames[i] {
			t.Errorf("argument %d is named %q, want %q", i, child.Tag, wantNames[i])
		}
		if child.Text() != wantTexts[i] {
			t.Errorf("argument %d = %q, want %q", i, child.Text(), wantTexts[i])
		}
	}
}

func TestStringListArgEncoding(t *testing.T) {
	doc := NewRequest("get_bugs", StringArg("tag"), StringListArg([]string{"patch", "moreinfo"}))

	call := callElement(t, doc, "get_bugs")
	arr := call.SelectElement("arg1")
	if arr == nil {
		t.Fatal("list argument arg1 not found")
	}
	if got := arr.SelectAttrValue("xsi:type", ""); got != "soapenc:Array" {
		t.Errorf("xsi:type = %q, want soapenc:Array", got)
	}
	if got := arr.SelectAttrValue("soapenc:arrayType", ""); got != "xsd:string[]" {
		t.Errorf("soapenc:arrayType = %q, want open-ended xsd:string[]", got)
	}
	if got := arr.SelectAttrValue("xmlns:soapenc", ""); got != NamespaceEncoding {
		t.Errorf("xmlns:soapenc = %q, want %q", got, NamespaceEncoding)
	}

	items := arr.ChildElements()
	if len(items) != 2 {
		t.Fatalf("array has %d items, want 2", len(items))
	}
	for i, want := range []string{"patch", "moreinfo"} {
		if items[i].Tag != "item" {
			t.Errorf("array child %d is %q, want item", i, items[i].Tag)
		}
		if got := items[i].SelectAttrValue("xsi:type", ""); got != "xsd:string" {
			t.Errorf("item %d xsi:type = %q, want xsd:string", i, got)
		}
		if items[i].Text() != want {
			t.Errorf("item %d = %q, want %q", i, items[i].Text(), want)
		}
	}
}

func TestBugListArgEncoding(t *testing.T) {
	doc := GetStatusRequest([]BugID{12345, 67890, 11111})

	call := callElement(t, doc, "get_status")
	arr := call.SelectElement("arg0")
	if arr == nil {
		t.Fatal("bug list argument arg0 not found")
	}
	if got := arr.SelectAttrValue("soapenc:arrayType", ""); got != "xsd:int[3]" {
		t.Errorf("soapenc:arrayType = %q, want xsd:int[3] with exact count", got)
	}

	items := arr.ChildElements()
	if len(items) != 3 {
		t.Fatalf("array has %d items, want 3", len(items))
	}
	for i, want := range []string{"12345", "67890", "11111"} {
		if got := items[i].SelectAttrValue("xsi:type", ""); got != "xsd:int" {
			t.Errorf("item %d xsi:type = %q, want xsd:int", i, got)
		}
		if items[i].Text() != want {
			t.Errorf("item %d = %q, want %q", i, items[i].Text(), want)
		}
	}
}

func TestRequestSerialization(t *testing.T) {
	doc := NewestBugsRequest(5)
	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString failed: %v", err)
	}

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("serialized request lacks XML declaration: %q", out)
	}
	for _, want := range []string{"<soap:Envelope", "<soap:Header/>", "<soap:Body>", "<newest_bugs>", "<amount>5</amount>"} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized request does not contain %q:\n%s", want, out)
		}
	}
}
