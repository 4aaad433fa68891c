package addressbook_test

import (
	"assistant/internal/addressbook"
	"assistant/pkg/domain"
	"assistant/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func record(t *testing.T, name, birthday string, phones ...string) *domain.Record {
	t.Helper()

	r := domain.NewRecord(name)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	if birthday != "" {
		require.NoError(t, r.AddBirthday(birthday))
	}

	return r
}

func names(b *addressbook.Book) []string {
	var out []string
	for _, r := range b.Records() {
		out = append(out, r.Name)
	}

	return out
}

func TestBook_AddFind(t *testing.T) {
	b := addressbook.New()
	require.Equal(t, 0, b.Len())

	b.AddRecord(record(t, "Alice", "", "0123456789"))
	b.AddRecord(record(t, "Bob", ""))

	rec, ok := b.Find("Alice")
	require.True(t, ok)
	require.Equal(t, "Alice", rec.Name)

	_, ok = b.Find("alice")
	require.False(t, ok, "names are case sensitive")
	require.Equal(t, []string{"Alice", "Bob"}, names(b))
}

func TestBook_AddRecordOverwrites(t *testing.T) {
	b := addressbook.New()
	b.AddRecord(record(t, "Alice", "", "1111111111"))
	b.AddRecord(record(t, "Bob", ""))
	b.AddRecord(record(t, "Alice", "", "2222222222"))

	rec, ok := b.Find("Alice")
	require.True(t, ok)
	require.Equal(t, []domain.Phone{"2222222222"}, rec.Phones, "last write wins without merging")
	require.Equal(t, []string{"Alice", "Bob"}, names(b), "overwritten record keeps its position")
}

func TestBook_Delete(t *testing.T) {
	b := addressbook.New()
	b.AddRecord(record(t, "Alice", ""))
	b.AddRecord(record(t, "Bob", ""))
	b.AddRecord(record(t, "Carol", ""))

	require.NoError(t, b.Delete("Bob"))
	require.Equal(t, []string{"Alice", "Carol"}, names(b))

	require.ErrorIs(t, b.Delete("Bob"), serrors.ErrNotFound)
	require.Equal(t, 2, b.Len())

	b.AddRecord(record(t, "Bob", ""))
	require.Equal(t, []string{"Alice", "Carol", "Bob"}, names(b))
}

func TestBook_ShowBirthday(t *testing.T) {
	b := addressbook.New()
	b.AddRecord(record(t, "Alice", "15.03.1990"))
	b.AddRecord(record(t, "Bob", ""))

	msg, err := b.ShowBirthday("Alice")
	require.NoError(t, err)
	require.Equal(t, "Birthday of contact Alice is on 15.03.1990", msg)

	msg, err = b.ShowBirthday("Bob")
	require.NoError(t, err)
	require.Equal(t, "Contact Bob does not have a birthday set", msg)

	_, err = b.ShowBirthday("Carol")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
