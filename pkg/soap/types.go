package soap

import "fmt"

// Namespace URIs used by the Debbugs SOAP interface.
const (
	// NamespaceEnvelope is the SOAP 1.1 envelope/body/fault vocabulary.
	NamespaceEnvelope = "http://schemas.xmlsoap.org/soap/envelope/"
	// NamespaceEncoding is the SOAP 1.1 array encoding vocabulary.
	NamespaceEncoding = "http://schemas.xmlsoap.org/soap/encoding/"
	// NamespaceXSI is the XML Schema instance vocabulary (xsi:type).
	NamespaceXSI = "http://www.w3.org/1999/XMLSchema-instance"
	// NamespaceXSD is the XML Schema type vocabulary (xsd:int, xsd:string).
	NamespaceXSD = "http://www.w3.org/1999/XMLSchema"
	// NamespaceDebbugs qualifies method response payloads.
	NamespaceDebbugs = "Debbugs/SOAP"
)

// hashWrapperTag is the element wrapping server-side hashes in get_status and
// get_usertag responses. The name is generated by the server's SOAP stack but
// is stable in practice, so it is matched literally.
const hashWrapperTag = "s-gensym3"

// BugID identifies a bug record in the bug tracking system.
type BugID int32

// Fault is a decoded SOAP fault body.
type Fault struct {
	// Code is the fault code ("Client", "Server", ...).
	Code string
	// Message is the human-readable fault string.
	Message string
	// Actor identifies the fault origin. Empty when the server omits it.
	Actor string
	// Detail carries application-specific fault text. Empty when omitted.
	Detail string
}

func (f *Fault) String() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// BugStatus is the resolution state filter accepted by search queries.
type BugStatus string

// Bug status values, in their canonical wire encoding.
const (
	StatusDone      BugStatus = "done"
	StatusForwarded BugStatus = "forwarded"
	StatusOpen      BugStatus = "open"
)

// ParseBugStatus parses the wire encoding of a bug status.
func ParseBugStatus(s string) (BugStatus, error) {
	switch s {
	case "done":
		return StatusDone, nil
	case "forwarded":
		return StatusForwarded, nil
	case "open":
		return StatusOpen, nil
	default:
		return "", fmt.Errorf("unknown bug status %q", s)
	}
}

// Pending describes how far along a bug is toward resolution.
type Pending string

// Pending values, in their canonical wire encoding.
const (
	PendingPending      Pending = "pending"
	PendingPendingFixed Pending = "pending-fixed"
	PendingFixed        Pending = "fixed"
	PendingDone         Pending = "done"
	PendingForwarded    Pending = "forwarded"
)

// ParsePending parses the wire encoding of a pending state.
func ParsePending(s string) (Pending, error) {
	switch s {
	case "pending":
		return PendingPending, nil
	case "pending-fixed":
		return PendingPendingFixed, nil
	case "fixed":
		return PendingFixed, nil
	case "done":
		return PendingDone, nil
	case "forwarded":
		return PendingForwarded, nil
	default:
		return "", fmt.Errorf("unknown pending state %q", s)
	}
}

// ArchiveState selects archived bugs, unarchived bugs, or both in a search.
type ArchiveState string

// Archive states, in their canonical wire encoding.
const (
	ArchiveArchived   ArchiveState = "archived"
	ArchiveUnarchived ArchiveState = "unarchived"
	ArchiveBoth       ArchiveState = "both"
)

// ParseArchiveState parses the wire encoding of an archive state. The server
// historically emitted "1" and "0" for archived and unarchived; both spellings
// are accepted.
func ParseArchiveState(s string) (ArchiveState, error) {
	switch s {
	case "archived", "1":
		return ArchiveArchived, nil
	case "unarchived", "0":
		return ArchiveUnarchived, nil
	case "both":
		return ArchiveBoth, nil
	default:
		return "", fmt.Errorf("unknown archive state %q", s)
	}
}

// parseBool parses the wire encoding of a boolean. Only the literals "1" and
// "0" are valid.
func parseBool(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}
