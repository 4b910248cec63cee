package services

import (
	"testing"

	"hotel-backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCodeStartsAtOne(t *testing.T) {
	db := setupTestDB(t)

	code, err := NextCode(db, 1, invoiceCodePrefix, invoiceCodeWidth)
	require.NoError(t, err)
	assert.Equal(t, "HD000001", code)
}

func TestNextCodeIncrements(t *testing.T) {
	db := setupTestDB(t)

	for i, want := range []string{"KK000001", "KK000002", "KK000003"} {
		code, err := NextCode(db, 1, checkCodePrefix, checkCodeWidth)
		require.NoError(t, err, "allocation %d", i)
		assert.Equal(t, want, code)
	}
}

func TestNextCodeCountersAreIndependent(t *testing.T) {
	db := setupTestDB(t)

	code, err := NextCode(db, 1, invoiceCodePrefix, invoiceCodeWidth)
	require.NoError(t, err)
	assert.Equal(t, "HD000001", code)

	code, err = NextCode(db, 1, itemCodePrefix, itemCodeWidth)
	require.NoError(t, err)
	assert.Equal(t, "SP00001", code)

	// another hotel has its own sequence
	code, err = NextCode(db, 2, invoiceCodePrefix, invoiceCodeWidth)
	require.NoError(t, err)
	assert.Equal(t, "HD000001", code)
}

func TestNextCodeContinuesFromSeededCounter(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.CodeCounter{HotelID: 1, Prefix: "SP", Seq: 41}).Error)

	code, err := NextCode(db, 1, itemCodePrefix, itemCodeWidth)
	require.NoError(t, err)
	assert.Equal(t, "SP00042", code)
}
