package soap

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// BugLog is one correspondence entry from a bug's message log.
type BugLog struct {
	// Header is the raw RFC 5322 header block of the message.
	Header string
	// MsgNum is the message's sequence number, unique and increasing within
	// a bug.
	MsgNum int
	// Body is the message body text.
	Body string
}

// MailHeader parses the raw header block into structured mail headers.
func (l *BugLog) MailHeader() (mail.Header, error) {
	msg, err := mail.ReadMessage(strings.NewReader(l.Header + "\r\n\r\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse log entry header: %w", err)
	}
	return msg.Header, nil
}

// parseBugLog projects one log array item into a BugLog. Header, msg_num,
// and body are mandatory; a log entry has no meaningful absent state. An
// attachments element is tolerated only when empty (the server never
// populates it), and any other child name is a decode error.
func parseBugLog(item *etree.Element) (*BugLog, error) {
	var entry BugLog
	var haveHeader, haveMsgNum, haveBody bool

	for _, child := range item.ChildElements() {
		switch child.Tag {
		case "header":
			if text := child.Text(); text != "" {
				entry.Header = text
				haveHeader = true
			}
		case "msg_num":
			n, err := strconv.Atoi(child.Text())
			if err != nil {
				return nil, fmt.Errorf("%w: msg_num %q is not an integer", ErrStructureMismatch, child.Text())
			}
			entry.MsgNum = n
			haveMsgNum = true
		case "body":
			if text := child.Text(); text != "" {
				entry.Body = text
				haveBody = true
			}
		case "attachments":
			if len(child.ChildElements()) > 0 {
				return nil, fmt.Errorf("%w: non-empty attachments element", ErrStructureMismatch)
			}
		default:
			return nil, fmt.Errorf("%w: unknown element %q in log entry", ErrStructureMismatch, child.Tag)
		}
	}

	if !haveHeader {
		return nil, fmt.Errorf("%w: header", ErrMissingField)
	}
	if !haveMsgNum {
		return nil, fmt.Errorf("%w: msg_num", ErrMissingField)
	}
	if !haveBody {
		return nil, fmt.Errorf("%w: body", ErrMissingField)
	}
	return &entry, nil
}

// ParseGetBugLogResponse decodes a get_bug_log response into the bug's log
// entries in document order. Log entries are structured records, so the array
// advertises the generic ur-type rather than a primitive element type.
func ParseGetBugLogResponse(text string) ([]BugLog, error) {
	resp, err := UnwrapResponse(text, "get_bug_log")
	if err != nil {
		return nil, err
	}

	arr, err := selectArray(resp, recordArrayType)
	if err != nil {
		return nil, err
	}
	if t := arr.SelectAttrValue("type", ""); t != "soapenc:Array" {
		return nil, fmt.Errorf("%w: xsi:type of soapenc:Array is %q", ErrStructureMismatch, t)
	}

	logs := []BugLog{}
	for _, item := range arr.ChildElements() {
		if item.Tag != "item" {
			continue
		}
		entry, err := parseBugLog(item)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *entry)
	}
	return logs, nil
}
