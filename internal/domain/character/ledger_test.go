package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninthworld/chargen/internal/domain/catalog"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

func TestLedger_AddWithinCap(t *testing.T) {
	ledger := NewLedger(15)

	err := ledger.Add(LineItem{Name: "Broadsword", Category: catalog.CategoryWeapons, Cost: 10})
	require.NoError(t, err)

	assert.Equal(t, 10, ledger.Total())
	assert.Equal(t, 5, ledger.Remaining())
	assert.Equal(t, 10, ledger.Subtotal(catalog.CategoryWeapons))
}

func TestLedger_RejectedAddLeavesStateUnchanged(t *testing.T) {
	ledger := NewLedger(15)
	require.NoError(t, ledger.Add(LineItem{Name: "Broadsword", Category: catalog.CategoryWeapons, Cost: 10}))

	err := ledger.Add(LineItem{Name: "Brigandine", Category: catalog.CategoryArmor, Cost: 8})
	require.Error(t, err)
	assert.True(t, cherr.IsOverBudget(err))

	// rejection must not alter any observable state
	assert.Equal(t, 10, ledger.Total())
	assert.Equal(t, 5, ledger.Remaining())
	assert.Equal(t, 0, ledger.Subtotal(catalog.CategoryArmor))
	assert.Len(t, ledger.Purchases(), 1)
}

func TestLedger_ExactCapIsAllowed(t *testing.T) {
	ledger := NewLedger(15)
	require.NoError(t, ledger.Add(LineItem{Name: "Broadsword", Category: catalog.CategoryWeapons, Cost: 10}))
	require.NoError(t, ledger.Add(LineItem{Name: "Rations", Category: catalog.CategoryConsumables, Cost: 5}))

	assert.Equal(t, 0, ledger.Remaining())

	err := ledger.Add(LineItem{Name: "Rope", Category: catalog.CategoryGear, Cost: 1})
	assert.True(t, cherr.IsOverBudget(err))
}

func TestLedger_ZeroCostAlwaysFits(t *testing.T) {
	ledger := NewLedger(0)

	err := ledger.Add(LineItem{Name: "Pebble", Category: catalog.CategoryGear, Cost: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Remaining())
}

func TestLedger_NegativeCostRejected(t *testing.T) {
	ledger := NewLedger(15)

	err := ledger.Add(LineItem{Name: "Refund", Category: catalog.CategoryGear, Cost: -3})
	require.Error(t, err)
	assert.Equal(t, cherr.CodeInvalidArgument, cherr.GetCode(err))
	assert.Equal(t, 0, ledger.Total())
}

func TestLedger_RemoveLastIsLIFO(t *testing.T) {
	ledger := NewLedger(20)
	require.NoError(t, ledger.Add(LineItem{Name: "Broadsword", Category: catalog.CategoryWeapons, Cost: 10}))
	require.NoError(t, ledger.Add(LineItem{Name: "Rations", Category: catalog.CategoryConsumables, Cost: 5}))

	removed, err := ledger.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, "Rations", removed.Name)
	assert.Equal(t, 10, ledger.Total())
	assert.Equal(t, 0, ledger.Subtotal(catalog.CategoryConsumables))

	removed, err = ledger.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, "Broadsword", removed.Name)
	assert.Equal(t, 0, ledger.Total())
}

func TestLedger_RemoveLastOnEmpty(t *testing.T) {
	ledger := NewLedger(15)

	_, err := ledger.RemoveLast()
	require.Error(t, err)
	assert.Equal(t, cherr.CodeEmptyLedger, cherr.GetCode(err))
}

func TestLedger_UndoReopensBudget(t *testing.T) {
	ledger := NewLedger(15)
	require.NoError(t, ledger.Add(LineItem{Name: "Broadsword", Category: catalog.CategoryWeapons, Cost: 10}))

	err := ledger.Add(LineItem{Name: "Brigandine", Category: catalog.CategoryArmor, Cost: 8})
	require.Error(t, err)

	_, err = ledger.RemoveLast()
	require.NoError(t, err)

	err = ledger.Add(LineItem{Name: "Brigandine", Category: catalog.CategoryArmor, Cost: 8})
	require.NoError(t, err)
	assert.Equal(t, 7, ledger.Remaining())
}

func TestLedger_PurchasesReturnsCopy(t *testing.T) {
	ledger := NewLedger(15)
	require.NoError(t, ledger.Add(LineItem{Name: "Rope", Category: catalog.CategoryGear, Cost: 2}))

	got := ledger.Purchases()
	got[0].Name = "mutated"

	assert.Equal(t, "Rope", ledger.Purchases()[0].Name)
}
