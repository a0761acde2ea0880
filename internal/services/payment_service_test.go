package services

import (
	"context"
	"testing"

	"mangan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMethodReturnsExisting(t *testing.T) {
	f := newFixture(t)

	// "COD" is seeded by the fixture; resolving it must not create a second row.
	id, err := f.payments.ResolveMethod("COD")
	require.NoError(t, err)

	again, err := f.payments.ResolveMethod("COD")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	var count int64
	require.NoError(t, f.db.Model(&models.PaymentMethod{}).Where("label = ?", "COD").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResolveMethodCreatesOnMiss(t *testing.T) {
	f := newFixture(t)

	id, err := f.payments.ResolveMethod("Transfer Bank - Mandiri")
	require.NoError(t, err)
	require.NotZero(t, id)

	method, err := f.payments.GetMethodByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Transfer Bank - Mandiri", method.Label)

	// Labels are matched exactly, so a different casing is a different method.
	other, err := f.payments.ResolveMethod("transfer bank - mandiri")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPaymentMethodDetails(t *testing.T) {
	f := newFixture(t)

	method, err := f.payments.CreateMethod("Transfer Bank - BCA")
	require.NoError(t, err)

	require.NoError(t, f.payments.AddDetail(context.Background(), method.ID, "1234567890", "CV Mangan Catering", "data:image/png;base64,logo"))
	assert.Equal(t, 1, f.images.uploads)

	loaded, err := f.payments.GetMethodByID(method.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Details, 1)
	detail := loaded.Details[0]
	assert.Equal(t, "1234567890", detail.AccountNumber)
	assert.Equal(t, "CV Mangan Catering", detail.PayeeName)
	assert.NotEmpty(t, detail.LogoURL)

	// Blank fields on update keep the stored values.
	require.NoError(t, f.payments.UpdateDetail(context.Background(), detail.ID, "", "PT Mangan Boga", ""))
	assert.Equal(t, 1, f.images.uploads)

	loaded, err = f.payments.GetMethodByID(method.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Details, 1)
	assert.Equal(t, "1234567890", loaded.Details[0].AccountNumber)
	assert.Equal(t, "PT Mangan Boga", loaded.Details[0].PayeeName)

	require.NoError(t, f.payments.DeleteDetail(detail.ID))
	loaded, err = f.payments.GetMethodByID(method.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Details)
}

func TestAddDetailUnknownMethod(t *testing.T) {
	f := newFixture(t)

	err := f.payments.AddDetail(context.Background(), 999, "1", "x", "")
	assert.Error(t, err)
}
