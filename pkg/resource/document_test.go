package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	WidgetID int    `json:"widgetId"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

func (widget) IDField() string { return "widgetId" }

func TestParseDocumentKeepsBody(t *testing.T) {
	d, err := ParseDocument[widget]([]byte(`{ "widgetId": 3, "name": "gear", "colour": "red" }`))
	require.NoError(t, err)
	assert.Equal(t, `{"widgetId":3,"name":"gear","colour":"red"}`, string(d.Bytes()))

	id, ok := d.RecordID()
	assert.True(t, ok)
	assert.Equal(t, 3, id)

	out, err := json.Marshal([]Document[widget]{d})
	require.NoError(t, err)
	assert.Equal(t, `[{"widgetId":3,"name":"gear","colour":"red"}]`, string(out))
}

func TestParseDocumentRejectsMalformedJSON(t *testing.T) {
	_, err := ParseDocument[widget]([]byte(`{"widgetId":`))
	assert.Error(t, err)

	var d Document[widget]
	assert.Error(t, json.Unmarshal([]byte(`{"widgetId":1,}`), &d))
}

func TestDocumentIDs(t *testing.T) {
	cases := map[string]struct {
		body string
		id   int
		ok   bool
	}{
		"integer":        {`{"widgetId":7}`, 7, true},
		"negative":       {`{"widgetId":-2}`, -2, true},
		"exponent":       {`{"widgetId":1e2}`, 100, true},
		"integral float": {`{"widgetId":4.0}`, 4, true},
		"fraction":       {`{"widgetId":4.5}`, 0, false},
		"string":         {`{"widgetId":"7"}`, 0, false},
		"null":           {`{"widgetId":null}`, 0, false},
		"missing":        {`{"name":"gear"}`, 0, false},
		"array body":     {`[1,2]`, 0, false},
		"last key wins":  {`{"widgetId":1,"widgetId":2}`, 2, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := ParseDocument[widget]([]byte(tc.body))
			require.NoError(t, err)
			id, ok := d.RecordID()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.id, id)
		})
	}
}

func TestTypedIsBestEffort(t *testing.T) {
	d, err := ParseDocument[widget]([]byte(`{"widgetId":1,"name":"gear","count":"many"}`))
	require.NoError(t, err)
	w := d.Typed()
	assert.Equal(t, widget{WidgetID: 1, Name: "gear"}, w)
}

func TestWith(t *testing.T) {
	d, err := ParseDocument[widget]([]byte(`{"widgetId":1,"name":"gear","extra":true}`))
	require.NoError(t, err)

	renamed, err := d.With("name", json.RawMessage(`"cog"`))
	require.NoError(t, err)
	assert.Equal(t, `{"widgetId":1,"name":"cog","extra":true}`, string(renamed.Bytes()))

	added, err := d.With("count", json.RawMessage(`3`))
	require.NoError(t, err)
	assert.Equal(t, `{"widgetId":1,"name":"gear","extra":true,"count":3}`, string(added.Bytes()))

	removed, err := d.With("name", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"widgetId":1,"extra":true}`, string(removed.Bytes()))

	moved, err := d.With("widgetId", json.RawMessage(`9`))
	require.NoError(t, err)
	id, ok := moved.RecordID()
	assert.True(t, ok)
	assert.Equal(t, 9, id)

	arr, err := ParseDocument[widget]([]byte(`[]`))
	require.NoError(t, err)
	_, err = arr.With("name", json.RawMessage(`"x"`))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestField(t *testing.T) {
	d, err := ParseDocument[widget]([]byte(`{"widgetId":1,"name":"gear"}`))
	require.NoError(t, err)
	v, ok := d.Field("name")
	assert.True(t, ok)
	assert.Equal(t, `"gear"`, string(v))
	_, ok = d.Field("colour")
	assert.False(t, ok)
}

func TestDocumentsEncodesTypedRecords(t *testing.T) {
	docs, err := Documents([]widget{{WidgetID: 1, Name: "gear"}, {WidgetID: 2}})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, `{"widgetId":1,"name":"gear","count":0}`, string(docs[0].Bytes()))
	id, _ := docs[1].RecordID()
	assert.Equal(t, 2, id)
}
