package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_Grid(t *testing.T) {
	slots := Slots()

	// 07:00..23:55 em passos de 5min = 17h * 12 = 204, mais "00:00"
	require.Len(t, slots, 205)

	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "23:55", slots[len(slots)-2])
	assert.Equal(t, "00:00", slots[len(slots)-1])

	assert.Contains(t, slots, "09:05")
	assert.NotContains(t, slots, "06:55")
	assert.NotContains(t, slots, "00:05")
}

func TestSlots_Deterministic(t *testing.T) {
	assert.Equal(t, Slots(), Slots())
}

func TestSlots_ReturnsCopy(t *testing.T) {
	first := Slots()
	first[0] = "corrupted"

	assert.Equal(t, "07:00", Slots()[0])
}

func TestSlots_StrictlyIncreasingBeforeMidnight(t *testing.T) {
	slots := Slots()

	// Sem o slot final de meia-noite a grade é estritamente crescente
	for i := 1; i < len(slots)-1; i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}
