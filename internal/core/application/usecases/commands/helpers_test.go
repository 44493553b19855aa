package commands_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}
