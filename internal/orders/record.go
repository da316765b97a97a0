package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
)

// Fetcher loads the order list once per screen activation.
type Fetcher interface {
	FetchOrders(ctx context.Context) ([]Record, error)
}

// Record is one customer order as stored by the storefront.
type Record struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Date     Date     `json:"date"`
	Status   string   `json:"status"`
	Address  string   `json:"address"`
	Total    *float64 `json:"total"`
	Products Products `json:"products"`
}

// UnmarshalJSON decodes one order field by field. Text fields accept strings
// and other scalars, the total accepts numbers and numeric strings, and any
// value of the wrong shape is treated as absent.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Name     json.RawMessage `json:"name"`
		Date     Date            `json:"date"`
		Status   json.RawMessage `json:"status"`
		Address  json.RawMessage `json:"address"`
		Total    json.RawMessage `json:"total"`
		Products Products        `json:"products"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Record{
		ID:       scalarText(raw.ID),
		Name:     scalarText(raw.Name),
		Date:     raw.Date,
		Status:   scalarText(raw.Status),
		Address:  scalarText(raw.Address),
		Total:    numberValue(raw.Total),
		Products: raw.Products,
	}
	return nil
}

// scalarText renders strings unquoted and numbers or booleans as written.
// Null, objects and arrays yield "".
func scalarText(b json.RawMessage) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ""
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(b)
	}
}

// numberValue reads a JSON number or a numeric string.
func numberValue(b json.RawMessage) *float64 {
	text := scalarText(b)
	if text == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Date is either a timestamp with whole seconds or whatever raw value the
// writer stored (usually a preformatted string).
type Date struct {
	Seconds int64
	Nanos   int64
	Stamped bool
	Raw     string
}

// Timestamp builds a stamped Date.
func Timestamp(seconds int64) Date {
	return Date{Seconds: seconds, Stamped: true}
}

// RawDate builds a pass-through Date.
func RawDate(value string) Date {
	return Date{Raw: value}
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return !d.Stamped && d.Raw == ""
}

// UnmarshalJSON accepts {"seconds": n}, {"_seconds": n}, strings, other
// scalars and null. A timestamp object with malformed fields is absent.
func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*d = Date{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		return json.Unmarshal(b, &d.Raw)
	case '{':
		var ts struct {
			Seconds     *float64 `json:"seconds"`
			AltSeconds  *float64 `json:"_seconds"`
			Nanoseconds int64    `json:"nanoseconds"`
			AltNanos    int64    `json:"_nanoseconds"`
		}
		if err := json.Unmarshal(b, &ts); err != nil {
			return nil
		}
		seconds := ts.Seconds
		if seconds == nil {
			seconds = ts.AltSeconds
		}
		if seconds == nil {
			return nil
		}
		d.Seconds = int64(math.Floor(*seconds))
		d.Nanos = ts.Nanoseconds + ts.AltNanos
		d.Stamped = true
		return nil
	default:
		d.Raw = string(b)
		return nil
	}
}

// Product is a single order line.
type Product struct {
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
}

// UnmarshalJSON requires an object; the name may be any scalar.
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name     json.RawMessage `json:"name"`
		Quantity Quantity        `json:"quantity"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Product{Name: scalarText(raw.Name), Quantity: raw.Quantity}
	return nil
}

// Quantity keeps the stored quantity text; writers used both numbers and strings.
type Quantity string

// UnmarshalJSON accepts numbers, strings and null.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*q = ""
	default:
		*q = Quantity(scalarText(b))
	}
	return nil
}

// Products is the normalized product list. Orders store products either as
// an array or as an object keyed by product ID; both decode to the same
// ordered slice, objects keeping their document order.
type Products []Product

// UnmarshalJSON normalizes both storage shapes. Any other shape is treated
// as no products, and entries that are not product objects are skipped.
func (p *Products) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*p = nil
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(b, &entries); err != nil {
			return fmt.Errorf("decode products: %w", err)
		}
		*p = decodeProductEntries(entries)
	case '{':
		entries, err := keyedEntries(b)
		if err != nil {
			return fmt.Errorf("decode products: %w", err)
		}
		*p = decodeProductEntries(entries)
	}
	return nil
}

// keyedEntries returns the values of a JSON object in document order.
func keyedEntries(b []byte) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var out []json.RawMessage
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var entry json.RawMessage
		if err := dec.Decode(&entry); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func decodeProductEntries(entries []json.RawMessage) Products {
	var out Products
	for _, entry := range entries {
		if isNull(entry) {
			continue
		}
		var prod Product
		if err := json.Unmarshal(entry, &prod); err != nil {
			continue
		}
		out = append(out, prod)
	}
	return out
}

// DecodeRecords reads either a bare JSON array of orders or an
// {"items": [...]} envelope. Entries that are not order objects are logged
// and skipped.
func DecodeRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("decode orders: empty payload")
	}

	var entries []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
	case '{':
		var envelope struct {
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
		entries = envelope.Items
	default:
		return nil, fmt.Errorf("decode orders: unexpected payload starting with %q", data[0])
	}

	records := make([]Record, 0, len(entries))
	for i, entry := range entries {
		if isNull(entry) {
			continue
		}
		var rec Record
		if err := json.Unmarshal(entry, &rec); err != nil {
			log.Printf("skip order %d: %v", i, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func isNull(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}
