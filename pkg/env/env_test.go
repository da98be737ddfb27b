package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func lookupFrom(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestGetPrefersPrimaryOverAlternate(t *testing.T) {
	r := NewResolver(lookupFrom(map[string]string{
		"PRIMARY":   "one",
		"ALTERNATE": "two",
	}))

	require.Equal(t, "one", r.GetAlt("PRIMARY", "ALTERNATE").StringOr("def"))
}

func TestGetAltFallsBack(t *testing.T) {
	r := NewResolver(lookupFrom(map[string]string{
		"ALTERNATE": "two",
	}))

	require.Equal(t, "two", r.GetAlt("PRIMARY", "ALTERNATE").StringOr("def"))
}

func TestGetUnsetYieldsDefault(t *testing.T) {
	r := NewResolver(lookupFrom(nil))

	require.Equal(t, "def", r.Get("MISSING").StringOr("def"))
	require.Equal(t, "def", r.GetAlt("MISSING", "ALSO_MISSING").StringOr("def"))
}

func TestRequired(t *testing.T) {
	r := NewResolver(lookupFrom(map[string]string{"SET": "x", "EMPTY": ""}))

	v, err := r.Get("SET").Required()
	require.NoError(t, err)
	require.Equal(t, "x", v)

	_, err = r.Get("MISSING").Required()
	require.Error(t, err)

	// Set-but-empty counts as unset.
	_, err = r.Get("EMPTY").Required()
	require.Error(t, err)
}

func TestIntOr(t *testing.T) {
	r := NewResolver(lookupFrom(map[string]string{"N": "40", "BAD": "forty"}))

	n, err := r.Get("N").IntOr(30)
	require.NoError(t, err)
	require.Equal(t, 40, n)

	n, err = r.Get("MISSING").IntOr(30)
	require.NoError(t, err)
	require.Equal(t, 30, n)

	_, err = r.Get("BAD").IntOr(30)
	require.Error(t, err)
}

func TestBoolOrTruthySet(t *testing.T) {
	truthy := []string{"true", "t", "yes", "y", "on", "1", "TRUE", "Yes", "ON"}
	for _, raw := range truthy {
		r := NewResolver(lookupFrom(map[string]string{"FLAG": raw}))
		require.True(t, r.Get("FLAG").BoolOr(false), "value %q", raw)
	}

	falsy := []string{"false", "0", "no", "off", "enabled", "tru", "2"}
	for _, raw := range falsy {
		r := NewResolver(lookupFrom(map[string]string{"FLAG": raw}))
		require.False(t, r.Get("FLAG").BoolOr(true), "value %q", raw)
	}

	r := NewResolver(lookupFrom(nil))
	require.True(t, r.Get("FLAG").BoolOr(true))
	require.False(t, r.Get("FLAG").BoolOr(false))
}

func TestDurationOr(t *testing.T) {
	r := NewResolver(lookupFrom(map[string]string{"D": "45s", "BAD": "soon"}))

	d, err := r.Get("D").DurationOr(0)
	require.NoError(t, err)
	require.Equal(t, 45*time.Second, d)

	d, err = r.Get("MISSING").DurationOr(time.Minute)
	require.NoError(t, err)
	require.Equal(t, time.Minute, d)

	_, err = r.Get("BAD").DurationOr(0)
	require.Error(t, err)
}

func TestListKeepsEmptyTokens(t *testing.T) {
	r := NewResolver(lookupFrom(map[string]string{"L": "a,b,,c"}))

	require.Equal(t, []string{"a", "b", "", "c"}, r.Get("L").List(","))
	require.Empty(t, r.Get("MISSING").List(","))
}
