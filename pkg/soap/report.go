package soap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	version "github.com/knqyf263/go-deb-version"
)

// BugReport is the status record of one bug as returned by get_status. Every
// field is independently optional: a nil pointer (or nil slice) means the
// server did not send the field, or sent a value that did not decode. Absence
// is not an error and never maps to a default.
type BugReport struct {
	// Pending is the bug's progress toward resolution.
	Pending *Pending
	// MsgID is the message ID of the original report.
	MsgID *string
	// Owner is the address the bug is owned by.
	Owner *string
	// Keywords is the historical name for Tags, populated from the same wire
	// element.
	//
	// Deprecated: use Tags.
	Keywords *string
	// Affects lists packages affected besides the one the bug is filed on.
	Affects *string
	// Unarchived reports whether the bug was unarchived and can be archived
	// again.
	Unarchived *bool
	// Forwarded is the upstream location the bug was forwarded to.
	Forwarded *string
	// Summary is the bug's summary text.
	Summary *string
	// BugNum is the bug number.
	BugNum *BugID
	// Archived reports whether the bug is archived.
	Archived *bool
	// FoundVersions lists versions the bug was found in. Values that are not
	// valid Debian versions are skipped.
	FoundVersions []version.Version
	// Done is the address that closed the bug.
	Done *string
	// Severity is the severity of the bug report.
	Severity *string
	// Package is the package the bug is filed against.
	Package *string
	// FixedVersions lists versions the bug was fixed in.
	FixedVersions []VersionRef
	// Originator is the address that submitted the bug.
	Originator *string
	// Blocks lists bugs this bug blocks.
	Blocks *string
	// FoundDate is empty on current servers.
	//
	// Deprecated: the server does not populate this field.
	FoundDate []int64
	// Outlook is the bug's outlook text.
	Outlook *string
	// ID is the historical name for BugNum, populated from the same wire
	// element.
	//
	// Deprecated: use BugNum.
	ID *BugID
	// Found reports whether the wire record carried a found marker.
	Found bool
	// Fixed reports whether the wire record carried a fixed marker.
	Fixed bool
	// LastModified is the time of last modification, in Unix seconds.
	LastModified *int64
	// Tags is the space-separated tag list.
	Tags *string
	// Subject is the subject/title of the bug report.
	Subject *string
	// Location is the storage location of the bug ("db-h", "archive").
	Location *string
	// MergedWith lists the bugs this bug was merged with.
	MergedWith []BugID
	// BlockedBy lists bugs blocking this bug.
	BlockedBy *string
	// FixedDate is empty on current servers.
	//
	// Deprecated: the server does not populate this field.
	FixedDate []int64
	// LogModified is the time the bug log last changed, in Unix seconds.
	LogModified *int64
	// Source is the source package of the bug report.
	Source *string
}

func (r *BugReport) String() string {
	var b strings.Builder
	if r.BugNum != nil {
		fmt.Fprintf(&b, "Bug #%d", *r.BugNum)
	} else {
		b.WriteString("Bug #?")
	}
	if r.Package != nil {
		fmt.Fprintf(&b, " in %s", *r.Package)
	}
	if r.Summary != nil {
		fmt.Fprintf(&b, ": %s", *r.Summary)
	}
	return b.String()
}

// VersionRef is a version value as it appears on the wire: a Debian version
// optionally prefixed by a source package name and a slash ("pkg/1.2-3").
type VersionRef struct {
	// Package is the source package prefix. Empty when the wire value carries
	// no prefix.
	Package string
	// Version is the parsed Debian version. Nil when the version part is not
	// a valid Debian version.
	Version *version.Version
}

func (v VersionRef) String() string {
	ver := ""
	if v.Version != nil {
		ver = v.Version.String()
	}
	if v.Package == "" {
		return ver
	}
	return v.Package + "/" + ver
}

// parseVersionRef splits a wire version value on the first slash.
func parseVersionRef(s string) VersionRef {
	pkg, rest, found := strings.Cut(s, "/")
	if !found {
		rest, pkg = pkg, ""
	}
	ref := VersionRef{Package: pkg}
	if v, err := version.NewVersion(rest); err == nil {
		ref.Version = &v
	}
	return ref
}

// ParseGetStatusResponse decodes a get_status response into a map from bug ID
// to report. The payload is a server-side hash encoded as key/value item
// pairs under the hash wrapper element.
func ParseGetStatusResponse(text string) (map[BugID]*BugReport, error) {
	resp, err := UnwrapResponse(text, "get_status")
	if err != nil {
		return nil, err
	}
	if resp.NamespaceURI() != NamespaceDebbugs {
		return nil, fmt.Errorf("%w: namespace for get_statusResponse is %q", ErrStructureMismatch, resp.NamespaceURI())
	}

	container := resp.SelectElement(hashWrapperTag)
	if container == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, hashWrapperTag)
	}

	reports := make(map[BugID]*BugReport)
	for _, item := range container.ChildElements() {
		if item.Tag != "item" {
			continue
		}
		if item.NamespaceURI() != NamespaceDebbugs {
			return nil, fmt.Errorf("%w: namespace for item is %q", ErrStructureMismatch, item.NamespaceURI())
		}

		key := item.SelectElement("key")
		if key == nil {
			return nil, fmt.Errorf("%w: key", ErrMissingElement)
		}
		id, err := strconv.ParseInt(key.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bug id key %q is not an integer", ErrStructureMismatch, key.Text())
		}

		value := item.SelectElement("value")
		if value == nil {
			return nil, fmt.Errorf("%w: value", ErrMissingElement)
		}

		reports[BugID(id)] = bugReportFromElement(value)
	}
	return reports, nil
}

// bugReportFromElement projects a status value element into a BugReport.
// Every field is extracted best-effort: a missing child, an invalid boolean
// literal, or an unparsable number leaves the field absent rather than
// failing the record. This deliberately tolerates schema drift across server
// versions.
func bugReportFromElement(e *etree.Element) *BugReport {
	r := &BugReport{
		MsgID:      childText(e, "msgid"),
		Owner:      childText(e, "owner"),
		Keywords:   childText(e, "keywords"),
		Affects:    childText(e, "affects"),
		Unarchived: childBool(e, "unarchived"),
		Forwarded:  childText(e, "forwarded"),
		Summary:    childText(e, "summary"),
		BugNum:     childBugID(e, "bug_num"),
		Archived:   childBool(e, "archived"),
		Done:       childText(e, "done"),
		Severity:   childText(e, "severity"),
		Package:    childText(e, "package"),
		Originator: childText(e, "originator"),
		Blocks:     childText(e, "blocks"),
		FoundDate:  childInt64List(e, "found_date"),
		Outlook:    childText(e, "outlook"),
		ID:         childBugID(e, "id"),
		Found:      e.SelectElement("found") != nil,
		Fixed:      e.SelectElement("fixed") != nil,

		LastModified: childInt64(e, "last_modified"),
		Tags:         childText(e, "tags"),
		Subject:      childText(e, "subject"),
		Location:     childText(e, "location"),
		BlockedBy:    childText(e, "blockedby"),
		FixedDate:    childInt64List(e, "fixed_date"),
		LogModified:  childInt64(e, "log_modified"),
		Source:       childText(e, "source"),
	}

	if s := childText(e, "pending"); s != nil {
		if p, err := ParsePending(*s); err == nil {
			r.Pending = &p
		}
	}

	if found := e.SelectElement("found_versions"); found != nil {
		r.FoundVersions = []version.Version{}
		for _, s := range itemTexts(found) {
			if v, err := version.NewVersion(s); err == nil {
				r.FoundVersions = append(r.FoundVersions, v)
			}
		}
	}
	if fixed := e.SelectElement("fixed_versions"); fixed != nil {
		r.FixedVersions = []VersionRef{}
		for _, s := range itemTexts(fixed) {
			r.FixedVersions = append(r.FixedVersions, parseVersionRef(s))
		}
	}

	// mergedwith is a single text node of whitespace-separated bug numbers.
	if merged := childText(e, "mergedwith"); merged != nil {
		r.MergedWith = []BugID{}
		for _, field := range strings.Fields(*merged) {
			if n, err := strconv.ParseInt(field, 10, 32); err == nil {
				r.MergedWith = append(r.MergedWith, BugID(n))
			}
		}
	}

	return r
}

// childText returns the text of the named child, or nil when the child is
// absent or empty.
func childText(e *etree.Element, name string) *string {
	child := e.SelectElement(name)
	if child == nil {
		return nil
	}
	text := child.Text()
	if text == "" {
		return nil
	}
	return &text
}

func childBool(e *etree.Element, name string) *bool {
	s := childText(e, name)
	if s == nil {
		return nil
	}
	b, err := parseBool(*s)
	if err != nil {
		return nil
	}
	return &b
}

func childInt64(e *etree.Element, name string) *int64 {
	s := childText(e, name)
	if s == nil {
		return nil
	}
	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func childBugID(e *etree.Element, name string) *BugID {
	s := childText(e, name)
	if s == nil {
		return nil
	}
	n, err := strconv.ParseInt(*s, 10, 32)
	if err != nil {
		return nil
	}
	id := BugID(n)
	return &id
}

// childInt64List collects the parsable integer items of the named child list
// element. Returns nil when the child is absent, and an empty slice when it
// is present but empty.
func childInt64List(e *etree.Element, name string) []int64 {
	child := e.SelectElement(name)
	if child == nil {
		return nil
	}
	values := []int64{}
	for _, s := range itemTexts(child) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			values = append(values, n)
		}
	}
	return values
}

// itemTexts returns the text of each child element literally named "item".
func itemTexts(e *etree.Element) []string {
	var texts []string
	for _, item := range e.ChildElements() {
		if item.Tag == "item" {
			texts = append(texts, item.Text())
		}
	}
	return texts
}
