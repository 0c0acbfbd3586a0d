package debbugs

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/godebbugs/debbugs/pkg/soap"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestClient builds a client whose transport is replaced by fn.
func newTestClient(fn roundTripFunc) *Client {
	return NewClient(&Config{
		Endpoint:   "http://bugs.example/cgi-bin/soap.cgi",
		HTTPClient: &http.Client{Transport: fn},
	})
}

func xmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

const newestBugsBody = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:soapenc="http://schemas.xmlsoap.org/soap/encoding/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
	`<soap:Body><newest_bugsResponse xmlns="Debbugs/SOAP">` +
	`<soapenc:Array soapenc:arrayType="xsd:int[2]" xsi:type="soapenc:Array">` +
	`<item xsi:type="xsd:int">1001</item><item xsi:type="xsd:int">1002</item>` +
	`</soapenc:Array></newest_bugsResponse></soap:Body></soap:Envelope>`

func TestNewestBugs(t *testing.T) {
	var captured *http.Request
	var capturedBody string

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		body, _ := io.ReadAll(req.Body)
		capturedBody = string(body)
		return xmlResponse(http.StatusOK, newestBugsBody), nil
	})

	ids, err := client.NewestBugs(context.Background(), 2)
	if err != nil {
		t.Fatalf("NewestBugs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1001 || ids[1] != 1002 {
		t.Errorf("got %v, want [1001 1002]", ids)
	}

	if captured.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", captured.Method)
	}
	if got := captured.Header.Get("Content-Type"); got != "text/xml" {
		t.Errorf("Content-Type = %q, want text/xml", got)
	}
	if got := captured.Header.Get("SOAPAction"); got != "newest_bugs" {
		t.Errorf("SOAPAction = %q, want bare operation name", got)
	}
	if !strings.Contains(capturedBody, "<newest_bugs>") {
		t.Errorf("request body does not carry the call element:\n%s", capturedBody)
	}
	if !strings.Contains(capturedBody, "<amount>2</amount>") {
		t.Errorf("request body does not carry the amount argument:\n%s", capturedBody)
	}
}

func TestActionNamespace(t *testing.T) {
	var gotAction string
	client := NewClient(&Config{
		Endpoint:        "http://bugs.example/soap.cgi",
		ActionNamespace: "Debbugs/SOAP",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			gotAction = req.Header.Get("SOAPAction")
			return xmlResponse(http.StatusOK, newestBugsBody), nil
		})},
	})

	if _, err := client.NewestBugs(context.Background(), 2); err != nil {
		t.Fatalf("NewestBugs failed: %v", err)
	}
	if gotAction != "Debbugs/SOAP#newest_bugs" {
		t.Errorf("SOAPAction = %q, want Debbugs/SOAP#newest_bugs", gotAction)
	}
}

func TestFaultResponse(t *testing.T) {
	faultBody := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soap:Body><soap:Fault>` +
		`<faultcode>Client</faultcode><faultstring>Invalid request</faultstring>` +
		`<detail>Bug ID not found</detail>` +
		`</soap:Fault></soap:Body></soap:Envelope>`

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusInternalServerError, faultBody), nil
	})

	_, err := client.GetBugLog(context.Background(), 99999999)
	var faultErr *FaultError
	if !errors.As(err, &faultErr) {
		t.Fatalf("got %v, want *FaultError", err)
	}
	if faultErr.Fault.Code != "Client" || faultErr.Fault.Message != "Invalid request" {
		t.Errorf("fault = %+v, want Client/Invalid request", faultErr.Fault)
	}
	if faultErr.Fault.Detail != "Bug ID not found" {
		t.Errorf("fault detail = %q, want Bug ID not found", faultErr.Fault.Detail)
	}
}

func TestErrorStatusWithoutFault(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusBadGateway, "<html>gateway error</html>"), nil
	})

	_, err := client.NewestBugs(context.Background(), 1)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("got %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", statusErr.StatusCode)
	}
}

func TestTransportErrorPassthrough(t *testing.T) {
	transportErr := errors.New("connection refused")
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, transportErr
	})

	_, err := client.NewestBugs(context.Background(), 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	// net/http wraps transport errors in *url.Error; the cause must still be
	// visible, not reinterpreted.
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("transport error not passed through: %v", err)
	}
}

func TestGetStatus(t *testing.T) {
	statusBody := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soap:Body><get_statusResponse xmlns="Debbugs/SOAP"><s-gensym3>` +
		`<item><key>42</key><value><bug_num>42</bug_num><subject>hello</subject></value></item>` +
		`</s-gensym3></get_statusResponse></soap:Body></soap:Envelope>`

	var capturedBody string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		capturedBody = string(body)
		return xmlResponse(http.StatusOK, statusBody), nil
	})

	reports, err := client.GetStatus(context.Background(), []BugID{42})
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	report := reports[42]
	if report == nil || report.Subject == nil || *report.Subject != "hello" {
		t.Errorf("report = %v, want subject hello", report)
	}

	if !strings.Contains(capturedBody, `soapenc:arrayType="xsd:int[1]"`) {
		t.Errorf("request should carry a counted int array:\n%s", capturedBody)
	}
}

func TestGetUsertag(t *testing.T) {
	usertagBody := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soap:Body><get_usertagResponse xmlns="Debbugs/SOAP"><s-gensym3>` +
		`<orphaned><item>7</item></orphaned>` +
		`</s-gensym3></get_usertagResponse></soap:Body></soap:Envelope>`

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusOK, usertagBody), nil
	})

	tags, err := client.GetUsertag(context.Background(), "qa@example.org", "orphaned")
	if err != nil {
		t.Fatalf("GetUsertag failed: %v", err)
	}
	if got := tags["orphaned"]; len(got) != 1 || got[0] != 7 {
		t.Errorf("orphaned = %v, want [7]", got)
	}
}

func TestGetBugs_DecodeErrorSurfaces(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(http.StatusOK, "<not-an-envelope/>"), nil
	})

	_, err := client.GetBugs(context.Background(), &SearchQuery{Package: "debbugs"})
	if !errors.Is(err, soap.ErrStructureMismatch) {
		t.Errorf("got %v, want ErrStructureMismatch", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(nil)
	if client.endpoint != DefaultEndpoint {
		t.Errorf("endpoint = %q, want %q", client.endpoint, DefaultEndpoint)
	}
	if client.httpClient.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, defaultTimeout)
	}
}
