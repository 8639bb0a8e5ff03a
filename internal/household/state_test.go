package household

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sharehouse/internal/config"
	"github.com/idilsaglam/sharehouse/internal/logger"
	"github.com/idilsaglam/sharehouse/internal/store/kvstore"
)

type mapStore map[string]string

func (m mapStore) Get(k string) (string, bool) {
	v, ok := m[k]
	return v, ok
}

func (m mapStore) Enqueue(k, v string) bool {
	m[k] = v
	return true
}

func seed() Seed { return SeedFrom(config.Default()) }

func TestLoad_EmptyStorageUsesSeed(t *testing.T) {
	st := Load(mapStore{}, seed(), logger.L())

	assert.Len(t, st.Chores.Active(), 3)
	assert.Zero(t, st.Chores.Points())
	assert.Equal(t, 3, st.Groceries.Len())
	assert.Equal(t, 3, st.Cleaning.Len())
}

func TestLoad_MalformedFallsBackPerKey(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false)

	st := Load(mapStore{
		KeyChores:    "{oops",
		KeyPoints:    "forty",
		KeyGroceries: "null",
		KeyCleaning:  `[{"text":"Mop","done":true}]`,
	}, seed(), log)

	assert.Len(t, st.Chores.Active(), 3)
	assert.Zero(t, st.Chores.Points())
	assert.Equal(t, 3, st.Groceries.Len())

	require.Equal(t, 1, st.Cleaning.Len())
	it := st.Cleaning.Items()[0]
	assert.Equal(t, "Mop", it.Text)
	assert.True(t, it.Done)
	assert.NotEmpty(t, it.ID, "missing ids are filled in")

	assert.Contains(t, buf.String(), KeyChores)
	assert.Contains(t, buf.String(), KeyPoints)
	assert.Contains(t, buf.String(), KeyGroceries)
}

func TestLoad_InvalidChoresKeepSeed(t *testing.T) {
	cases := map[string]string{
		"negative points": `[{"id":"1","name":"Dust","points":-5}]`,
		"duplicate id":    `[{"id":"1","name":"Dust","points":1},{"id":"1","name":"Mop","points":2}]`,
		"empty id":        `[{"id":"","name":"Dust","points":1}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			st := Load(mapStore{KeyChores: raw}, seed(), logger.New(&buf, false))

			require.Len(t, st.Chores.Chores(), 3)
			assert.Equal(t, "Fold washing", st.Chores.Chores()[0].Name)
			assert.Contains(t, buf.String(), "household.load_failed")
		})
	}

	st := Load(mapStore{KeyPoints: "-3"}, seed(), logger.L())
	assert.Zero(t, st.Chores.Points(), "negative total keeps the seed")
}

func TestSaveLoad_RoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), kvstore.DataFileName)
	store := kvstore.New(path)
	w := kvstore.NewWriter(store, nil)

	st := Initial(seed())
	var ok bool
	st.Chores, ok = st.Chores.Confirm("3")
	require.True(t, ok)
	st.Groceries, _ = st.Groceries.Add("Butter")
	st.Cleaning, _ = st.Cleaning.Delete(0)

	require.NoError(t, st.Save(w))
	require.NoError(t, w.Close(context.Background()))

	reopened, err := kvstore.Open(path)
	require.NoError(t, err)
	got := Load(reopened, seed(), logger.L())

	assert.Equal(t, 20, got.Chores.Points())
	assert.Len(t, got.Chores.Active(), 2)
	assert.Equal(t, st.Groceries.Items(), got.Groceries.Items())
	assert.Equal(t, st.Cleaning.Items(), got.Cleaning.Items())

	pts, _ := reopened.Get(KeyPoints)
	assert.Equal(t, "20", pts)
}

func TestSave_SelectedKeys(t *testing.T) {
	m := mapStore{}
	require.NoError(t, Initial(seed()).Save(m, KeyPoints))
	assert.Equal(t, mapStore{KeyPoints: "0"}, m)
}

func TestEncode_UnknownKey(t *testing.T) {
	_, err := Initial(seed()).Encode("NOPE")
	assert.Error(t, err)
}
