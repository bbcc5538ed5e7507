package parameters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("heuristic=lower_bound, greedy_home,expr=a=b,,")
	assert.Equal(t, Params{"heuristic": "lower_bound", "greedy_home": "", "expr": "a=b"}, params)
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("flag,off=false,n=7,big=18446744073709551615,x=0.5,d=3s,name=zero,bad=xx")

	b, err := GetParamOr(params, "flag", false)
	require.NoError(t, err)
	assert.True(t, b)
	b, err = GetParamOr(params, "off", true)
	require.NoError(t, err)
	assert.False(t, b)
	b, err = GetParamOr(params, "missing", true)
	require.NoError(t, err)
	assert.True(t, b)

	n, err := GetParamOr(params, "n", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	big, err := GetParamOr(params, "big", uint64(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), big)

	x, err := GetParamOr(params, "x", 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, x)

	d, err := GetParamOr(params, "d", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	name, err := GetParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "zero", name)

	_, err = GetParamOr(params, "bad", 0)
	assert.Error(t, err)
	_, err = GetParamOr(params, "bad", false)
	assert.Error(t, err)
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("n=3,typo=1,other")
	n, err := PopParamOr(params, "n", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NotContains(t, params, "n")

	err = CheckConsumed(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"other", "typo"`)

	delete(params, "typo")
	delete(params, "other")
	assert.NoError(t, CheckConsumed(params))
}
