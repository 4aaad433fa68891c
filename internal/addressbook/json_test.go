package addressbook_test

import (
	"assistant/internal/addressbook"
	"assistant/pkg/serrors"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBook_JSONRoundTrip(t *testing.T) {
	b := addressbook.New()
	b.AddRecord(record(t, "Alice", "15.03.1990", "0123456789", "0123456780"))
	b.AddRecord(record(t, "Bob", "", "1111111111"))

	var buf bytes.Buffer
	require.NoError(t, b.WriteJSON(&buf))
	require.JSONEq(t, `[
		{"name": "Alice", "phones": ["0123456789", "0123456780"], "birthday": "15.03.1990"},
		{"name": "Bob", "phones": ["1111111111"], "birthday": null}
	]`, buf.String())

	imported := addressbook.New()
	n, err := imported.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, names(b), names(imported))
	for _, want := range b.Records() {
		got, ok := imported.Find(want.Name)
		require.True(t, ok)
		require.Equal(t, want.String(), got.String())
	}
}

func TestBook_ReadJSONOverwrites(t *testing.T) {
	b := addressbook.New()
	b.AddRecord(record(t, "Alice", "", "1111111111"))
	b.AddRecord(record(t, "Bob", ""))

	n, err := b.ReadJSON(strings.NewReader(`[{"name": "Alice", "phones": ["2222222222"], "extra": {"ignored": true}}]`))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	rec, ok := b.Find("Alice")
	require.True(t, ok)
	require.Equal(t, "Contact name: Alice, phones: 2222222222", rec.String())
	require.Equal(t, []string{"Alice", "Bob"}, names(b))
}

func TestBook_ReadJSONInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "not json", in: `hello`},
		{name: "object instead of array", in: `{"name": "Alice"}`},
		{name: "invalid phone", in: `[{"name": "Alice", "phones": ["123"]}]`},
		{name: "invalid birthday", in: `[{"name": "Alice", "birthday": "1990-03-15"}]`},
		{name: "missing name", in: `[{"phones": ["0123456789"]}]`},
		{name: "second record invalid", in: `[{"name": "Bob"}, {"name": 42}]`},
		{name: "trailing data", in: `[{"name": "Bob"}] trailing junk`},
		{name: "second document", in: `[{"name": "Bob"}] []`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := addressbook.New()
			_, err := b.ReadJSON(strings.NewReader(tc.in))
			require.ErrorIs(t, err, serrors.ErrInvalidFormat)
			require.Equal(t, 0, b.Len(), "nothing is imported from an invalid document")
		})
	}
}
