package orders

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeRecords_ArrayAndEnvelope(t *testing.T) {
	payloads := map[string]string{
		"array":    `[{"id":"a1","name":"Ana","status":"pendiente","total":1500}]`,
		"envelope": `{"items":[{"id":"a1","name":"Ana","status":"pendiente","total":1500}]}`,
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			records, err := DecodeRecords(strings.NewReader(payload))
			if err != nil {
				t.Fatalf("DecodeRecords: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("records = %d, want 1", len(records))
			}
			r := records[0]
			if r.ID != "a1" || r.Name != "Ana" || r.Status != "pendiente" {
				t.Fatalf("record = %#v", r)
			}
			if r.Total == nil || *r.Total != 1500 {
				t.Fatalf("total = %v, want 1500", r.Total)
			}
		})
	}
}

func TestDecodeRecords_Rejects(t *testing.T) {
	for _, payload := range []string{"", "   ", `"orders"`, `[{"id":`} {
		if _, err := DecodeRecords(strings.NewReader(payload)); err == nil {
			t.Fatalf("DecodeRecords(%q) succeeded, want error", payload)
		}
	}
}

func TestDecodeRecords_NullFields(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(`[{"id":"x","name":"Bo","date":null,"status":null,"address":null,"total":null,"products":null}]`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	r := records[0]
	if !r.Date.IsZero() || r.Status != "" || r.Address != "" || r.Total != nil || r.Products != nil {
		t.Fatalf("record = %#v, want zero-valued optional fields", r)
	}
}

func TestDate_Shapes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    Date
	}{
		{"timestamp", `{"date":{"seconds":1704067200,"nanoseconds":5}}`, Date{Seconds: 1704067200, Nanos: 5, Stamped: true}},
		{"exported timestamp", `{"date":{"_seconds":1704067200,"_nanoseconds":0}}`, Timestamp(1704067200)},
		{"string", `{"date":"ayer"}`, RawDate("ayer")},
		{"number", `{"date":20240101}`, RawDate("20240101")},
		{"null", `{"date":null}`, Date{}},
		{"object without seconds", `{"date":{"when":"now"}}`, Date{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := DecodeRecords(strings.NewReader("[" + tc.payload + "]"))
			if err != nil {
				t.Fatalf("DecodeRecords: %v", err)
			}
			if got := records[0].Date; got != tc.want {
				t.Fatalf("date = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestProducts_ArrayAndKeyedNormalizeAlike(t *testing.T) {
	keyed, err := DecodeRecords(strings.NewReader(`[{"products":{"a":{"name":"Bread","quantity":2}}}]`))
	if err != nil {
		t.Fatalf("keyed: %v", err)
	}
	list, err := DecodeRecords(strings.NewReader(`[{"products":[{"name":"Bread","quantity":2}]}]`))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := Products{{Name: "Bread", Quantity: "2"}}
	if !reflect.DeepEqual(keyed[0].Products, want) || !reflect.DeepEqual(list[0].Products, want) {
		t.Fatalf("keyed = %#v list = %#v, want %#v", keyed[0].Products, list[0].Products, want)
	}
}

func TestProducts_KeyedKeepsDocumentOrder(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(`[{"products":{
		"zz":{"name":"Milk","quantity":"1"},
		"aa":{"name":"Eggs","quantity":12},
		"mm":{"name":"Salt","quantity":null}
	}}]`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	want := Products{
		{Name: "Milk", Quantity: "1"},
		{Name: "Eggs", Quantity: "12"},
		{Name: "Salt", Quantity: ""},
	}
	if got := records[0].Products; !reflect.DeepEqual(got, want) {
		t.Fatalf("products = %#v, want %#v", got, want)
	}
}

func TestProducts_UnknownShapeIsEmpty(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(`[{"products":"none"},{"products":{}},{"products":[]}]`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	for i, r := range records {
		if len(r.Products) != 0 {
			t.Fatalf("record %d products = %#v, want empty", i, r.Products)
		}
	}
}

func TestDecodeRecords_LooseFieldsKeepEveryOrder(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(`[
		{"id":"1","name":"Ana","total":"1500"},
		{"id":"2","name":"Luis","total":20},
		{"id":7,"name":"Marta","status":3,"total":{"amount":5}},
		{"id":"4","name":"Nico","products":{"a":{"name":"Bread","quantity":2},"b":"junk"}},
		{"id":"5","name":"Olga","date":{"seconds":"soon"},"address":["x"],"products":[null,4,{"name":9,"quantity":1}]}
	]`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("records = %d, want 5", len(records))
	}

	if r := records[0]; r.Total == nil || *r.Total != 1500 {
		t.Fatalf("numeric string total = %v, want 1500", r.Total)
	}
	if r := records[1]; r.Total == nil || *r.Total != 20 {
		t.Fatalf("total = %v, want 20", r.Total)
	}
	if r := records[2]; r.ID != "7" || r.Status != "3" || r.Total != nil {
		t.Fatalf("scalar fields = %#v, want id 7, status 3, no total", r)
	}
	if got, want := records[3].Products, (Products{{Name: "Bread", Quantity: "2"}}); !reflect.DeepEqual(got, want) {
		t.Fatalf("keyed products = %#v, want %#v", got, want)
	}
	r := records[4]
	if !r.Date.IsZero() || r.Address != "" {
		t.Fatalf("malformed date/address = %#v, want absent", r)
	}
	if want := (Products{{Name: "9", Quantity: "1"}}); !reflect.DeepEqual(r.Products, want) {
		t.Fatalf("array products = %#v, want %#v", r.Products, want)
	}
}

func TestDecodeRecords_SkipsEntriesThatAreNotOrders(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(`{"items":[{"id":"a","name":"Ana"},"oops",null,42,{"id":"b","name":"Bo"}]}`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Fatalf("ids = %v, want [a b]", ids)
	}
}
