package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
)

func validInput() Input {
	return Input{
		SupplierID:   id.New(),
		SupplierName: "Acme",
		Items: []ItemInput{
			{ProductID: id.New(), ProductName: "Hammer", Quantity: 10, UnitPrice: types.MustMoney("6")},
			{ProductID: id.New(), ProductName: "Nails", Quantity: 100, UnitPrice: types.MustMoney("0.05")},
		},
	}
}

func TestNew_ComputesTotalsAndDefaults(t *testing.T) {
	now := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	p := New(validInput(), now)

	assert.True(t, p.Items[0].Total.Equal(types.MustMoney("60")))
	assert.True(t, p.Subtotal.Equal(types.MustMoney("65")))
	assert.True(t, p.Tax.Equal(types.MustMoney("11.7")))
	assert.True(t, p.Total.Equal(types.MustMoney("76.7")))
	assert.Equal(t, StatusPending, p.Status)
	assert.True(t, p.OrderDate.Equal(now))
	assert.Nil(t, p.ReceivedDate)
}

func TestInput_Validate(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, validInput().Validate(ctx))

	noSupplier := validInput()
	noSupplier.SupplierID = id.Nil()
	assert.True(t, apperror.IsValidation(noSupplier.Validate(ctx)))

	noItems := validInput()
	noItems.Items = nil
	assert.True(t, apperror.IsValidation(noItems.Validate(ctx)))

	badQty := validInput()
	badQty.Items[1].Quantity = 0
	assert.True(t, apperror.IsValidation(badQty.Validate(ctx)))

	badStatus := validInput()
	badStatus.Status = "shipped"
	assert.True(t, apperror.IsValidation(badStatus.Validate(ctx)))
}

func TestPatch_ReceivingStampsDate(t *testing.T) {
	ordered := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	arrived := ordered.Add(72 * time.Hour)
	p := New(validInput(), ordered)

	received := StatusReceived
	got := Patch{Status: &received}.Apply(p, arrived)

	assert.Equal(t, StatusReceived, got.Status)
	require.NotNil(t, got.ReceivedDate)
	assert.True(t, got.ReceivedDate.Equal(arrived))
	assert.Nil(t, p.ReceivedDate, "original is untouched")
}

func TestPatch_ExplicitReceivedDateWins(t *testing.T) {
	now := time.Now().UTC()
	explicit := now.Add(-24 * time.Hour)
	received := StatusReceived

	got := Patch{Status: &received, ReceivedDate: &explicit}.Apply(New(validInput(), now), now)

	require.NotNil(t, got.ReceivedDate)
	assert.True(t, got.ReceivedDate.Equal(explicit))
}
