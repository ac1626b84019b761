package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
)

const (
	testPlayerID = "11111111-1111-1111-1111-111111111111"
	otherPlayer  = "22222222-2222-2222-2222-222222222222"
	testItemID   = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	borderWeapon = 32
	plainWeapon  = 2
)

func setup(t *testing.T) (Service, *MockRepository, *MockTx, *recordingPublisher) {
	t.Helper()
	repo := new(MockRepository)
	tx := new(MockTx)
	pub := &recordingPublisher{}
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	return NewService(repo, catalog.Default(), pub), repo, tx, pub
}

func ownedItem(weaponID int, price string) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:         testItemID,
		OwnerID:    testPlayerID,
		WeaponID:   weaponID,
		FinalPrice: decimal.RequireFromString(price),
	}
}

func player(sellBonus float64) *domain.Player {
	return &domain.Player{
		ID:      testPlayerID,
		Balance: decimal.NewFromInt(100),
		Stats:   domain.PassiveAggregate{SellBonusPercent: sellBonus},
	}
}

func decimalEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func TestSalePrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		bonus float64
		want  string
	}{
		{"no bonus", "432", 0, "432"},
		{"ten percent", "3", 10, "3.3"},
		{"rounds to four decimals", "2.5", 0.2, "2.505"},
		{"fractional bonus", "1.3333", 7.5, "1.4333"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalePrice(decimal.RequireFromString(tt.price), tt.bonus)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestSellItem_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo, tx, pub := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(10), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(plainWeapon, "3"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(false, nil)
	tx.On("DeleteItem", ctx, testItemID).Return(nil)
	tx.On("RecordRemoval", ctx, plainWeapon).Return(nil)
	tx.On("AdjustBalance", ctx, testPlayerID, decimalEq("3.3")).Return(decimal.RequireFromString("103.3"), nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.SellItem(ctx, testPlayerID, testItemID)
	require.NoError(t, err)

	assert.Equal(t, testItemID, result.ItemID)
	assert.Equal(t, plainWeapon, result.WeaponID)
	assert.True(t, decimal.RequireFromString("3.3").Equal(result.Price))
	assert.True(t, decimal.RequireFromString("103.3").Equal(result.Balance))
	assert.Equal(t, []event.Type{event.InventoryChanged, event.ItemSold}, pub.types())

	payload, err := event.DecodePayload[event.InventoryChangedPayloadV1](pub.events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, []string{testPlayerID}, payload.PlayerIDs)
	assert.Equal(t, domain.ChangeReasonSold, payload.Reason)

	tx.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSellItem_NotOwned(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, pub := setup(t)

	item := ownedItem(plainWeapon, "3")
	item.OwnerID = otherPlayer
	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(item, nil)

	_, err := svc.SellItem(ctx, testPlayerID, testItemID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotOwned)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, pub.types())
	tx.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSellItem_Listed(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, pub := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(plainWeapon, "3"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(true, nil)

	_, err := svc.SellItem(ctx, testPlayerID, testItemID)
	assert.ErrorIs(t, err, domain.ErrItemListed)
	assert.Empty(t, pub.types())
	tx.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestSellItem_ItemNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(nil, domain.ErrItemNotFound)

	_, err := svc.SellItem(ctx, testPlayerID, testItemID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSellItem_CreditFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, pub := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(plainWeapon, "3"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(false, nil)
	tx.On("DeleteItem", ctx, testItemID).Return(nil)
	tx.On("RecordRemoval", ctx, plainWeapon).Return(nil)
	tx.On("AdjustBalance", ctx, testPlayerID, mock.Anything).Return(decimal.Zero, domain.Internal("adjust", errors.New("boom")))

	_, err := svc.SellItem(ctx, testPlayerID, testItemID)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Empty(t, pub.types())
	tx.AssertCalled(t, "Rollback", ctx)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSellItem_BeginTxFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("BeginTx", ctx).Return(nil, errors.New("pool closed"))
	svc := NewService(repo, catalog.Default(), nil)

	_, err := svc.SellItem(ctx, testPlayerID, testItemID)
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestUseItem_UnlocksBorder(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, pub := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(borderWeapon, "500"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(false, nil)
	tx.On("UnlockBorder", ctx, testPlayerID, catalog.BorderLightning).Return(true, nil)
	tx.On("DeleteItem", ctx, testItemID).Return(nil)
	tx.On("RecordRemoval", ctx, borderWeapon).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.UseItem(ctx, testPlayerID, testItemID)
	require.NoError(t, err)

	assert.Equal(t, catalog.BorderLightning, result.BorderUnlockID)
	assert.False(t, result.AlreadyOwned)
	assert.Equal(t, []event.Type{event.InventoryChanged, event.ItemUsed}, pub.types())
	tx.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertExpectations(t)
}

func TestUseItem_AlreadyUnlockedStillConsumes(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(borderWeapon, "500"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(false, nil)
	tx.On("UnlockBorder", ctx, testPlayerID, catalog.BorderLightning).Return(false, nil)
	tx.On("DeleteItem", ctx, testItemID).Return(nil)
	tx.On("RecordRemoval", ctx, borderWeapon).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.UseItem(ctx, testPlayerID, testItemID)
	require.NoError(t, err)
	assert.True(t, result.AlreadyOwned)
	tx.AssertCalled(t, "DeleteItem", ctx, testItemID)
}

func TestUseItem_NotUsable(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, pub := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(plainWeapon, "3"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(false, nil)

	_, err := svc.UseItem(ctx, testPlayerID, testItemID)
	assert.ErrorIs(t, err, domain.ErrItemNotUsable)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, pub.types())
	tx.AssertNotCalled(t, "UnlockBorder", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseItem_ListedItem(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(borderWeapon, "500"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(true, nil)

	_, err := svc.UseItem(ctx, testPlayerID, testItemID)
	assert.ErrorIs(t, err, domain.ErrItemListed)
}

func TestUseItem_CommitFailure(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, pub := setup(t)

	tx.On("GetPlayerForUpdate", ctx, testPlayerID).Return(player(0), nil)
	tx.On("GetItemForUpdate", ctx, testItemID).Return(ownedItem(borderWeapon, "500"), nil)
	tx.On("IsItemListed", ctx, testItemID).Return(false, nil)
	tx.On("UnlockBorder", ctx, testPlayerID, catalog.BorderLightning).Return(true, nil)
	tx.On("DeleteItem", ctx, testItemID).Return(nil)
	tx.On("RecordRemoval", ctx, borderWeapon).Return(nil)
	tx.On("Commit", ctx).Return(errors.New("connection reset"))

	_, err := svc.UseItem(ctx, testPlayerID, testItemID)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Empty(t, pub.types())
}
