package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewStateRoundTrip(t *testing.T) {
	state := ViewState{
		Filters:  Filter{Status: "Pendiente", Channel: "Sistema", Sort: "level", Q: "vpn"},
		Page:     3,
		PageSize: 25,
	}

	data, err := Serialize(state)
	require.NoError(t, err)

	restored := Deserialize(data)
	require.Equal(t, state.Normalize(), restored)
	require.Equal(t, "Pendiente", restored.Filters.Status)
	require.Equal(t, All, restored.Filters.Department)
	require.Equal(t, 50, restored.Offset())
}

func TestDeserializeFallsBackToDefaults(t *testing.T) {
	for _, data := range []string{``, `null`, `not json`, `[1,2]`} {
		require.Equal(t, DefaultViewState(), Deserialize([]byte(data)))
	}

	got := Deserialize([]byte(`{"filters":{"status":"Cerrada"},"page":-2,"pageSize":1000}`))
	require.Equal(t, All, got.Filters.Status)
	require.Equal(t, DefaultPage, got.Page)
	require.Equal(t, MaxPageSize, got.PageSize)
}
