package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeNotifierOrder(t *testing.T) {
	var cn ChangeNotifier
	var got []int
	for i := 0; i < 4; i++ {
		i := i
		cn.Add(func(*RangeChangeEvent) { got = append(got, i) })
	}
	cn.Notify(&RangeChangeEvent{})
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestChangeNotifierRemoveByIdentity(t *testing.T) {
	var cn ChangeNotifier
	n := 0
	fn := func(*RangeChangeEvent) { n++ }
	l1 := cn.Add(fn)
	l2 := cn.Add(fn) // same func, different handle

	assert.True(t, cn.Remove(l1))
	assert.False(t, cn.Remove(l1))
	require.Equal(t, []*ChangeListener{l2}, cn.Listeners())

	cn.Notify(&RangeChangeEvent{})
	assert.Equal(t, 1, n)
}

func TestChangeNotifierRemoveWhileNotifying(t *testing.T) {
	var cn ChangeNotifier
	var got []string
	var l2 *ChangeListener
	cn.Add(func(*RangeChangeEvent) {
		got = append(got, "a")
		cn.Remove(l2)
	})
	l2 = cn.Add(func(*RangeChangeEvent) { got = append(got, "b") })

	cn.Notify(&RangeChangeEvent{})
	assert.Equal(t, []string{"a", "b"}, got, "removal counts from the next notification")

	got = nil
	cn.Notify(&RangeChangeEvent{})
	assert.Equal(t, []string{"a"}, got)
	assert.Len(t, cn.Listeners(), 1)
}

func TestChangeNotifierListenersIsCopy(t *testing.T) {
	var cn ChangeNotifier
	cn.Add(func(*RangeChangeEvent) {})
	ls := cn.Listeners()
	ls[0] = nil
	assert.NotNil(t, cn.Listeners()[0])
}
