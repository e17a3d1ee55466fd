package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/mero_khata/internal/core/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackendContainer_SharesWorkingDocument(t *testing.T) {
	stores := &memoryStores{}
	c := services.NewBackendContainer(stores, stores, services.BackendSettings{Location: time.UTC, NoticeCapacity: 5})
	ctx := context.Background()

	require.NotNil(t, c.Gateway)
	require.NotNil(t, c.Khata)
	require.NotNil(t, c.Reporting)
	require.NotNil(t, c.Export)
	require.NotNil(t, c.Notices)
	assert.Nil(t, c.Store)

	_, saved, err := c.Khata.CreateCustomer(ctx, dto.CreateCustomerRequest{Name: "Ram"})
	require.NoError(t, err)
	require.NoError(t, saved.Wait(ctx))

	assert.Equal(t, 1, c.Reporting.Dashboard(ctx).CustomerCount)
	assert.Equal(t, "Customer Created", c.Notices.Recent(1)[0].Message)
}

func TestNewStoreContainer(t *testing.T) {
	c := services.NewStoreContainer(new(MockDocumentRepository))

	assert.NotNil(t, c.Store)
	assert.Nil(t, c.Gateway)
}
