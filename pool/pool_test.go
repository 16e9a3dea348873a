package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsUsableBuffer(t *testing.T) {
	p := New[int]()
	buf := p.Get(4)
	require.Len(t, buf, 0)
	require.GreaterOrEqual(t, cap(buf), 4)
}

func TestPutThenGetRecycles(t *testing.T) {
	p := New[int]()
	buf := p.Get(8)
	buf = append(buf, 1, 2, 3)
	backing := &buf[0]
	p.Put(buf)

	got := p.Get(4)
	require.Equal(t, backing, &got[:cap(got)][0])
}

func TestPutZeroesOldValues(t *testing.T) {
	p := New[string]()
	buf := p.Get(2)
	buf = append(buf, "leftover")
	p.Put(buf)

	got := p.Get(2)
	full := got[:cap(got)]
	require.Empty(t, full[0])
}

func TestPutIgnoresZeroCapacity(t *testing.T) {
	p := New[int]()
	p.Put(nil)
	buf := p.Get(1)
	require.Equal(t, 0, len(buf))
}
