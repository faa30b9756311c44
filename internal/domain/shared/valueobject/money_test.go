package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, USD, m.Currency())

	_, err = NewMoney(decimal.NewFromInt(100), "")
	assert.Error(t, err)
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.56", EUR)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, EUR, m.Currency())

	_, err = NewMoneyFromString("not-a-number", EUR)
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(100))
	b := NewMoneyUSD(decimal.NewFromInt(40))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(140)))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(60)))

	product := a.Multiply(decimal.RequireFromString("1.5"))
	assert.True(t, product.Amount().Equal(decimal.NewFromInt(150)))

	assert.True(t, a.MultiplyByInt(3).Amount().Equal(decimal.NewFromInt(300)))
	assert.True(t, a.Negate().Amount().Equal(decimal.NewFromInt(-100)))
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	usd := NewMoneyUSD(decimal.NewFromInt(10))
	eur := Zero(EUR)

	_, err := usd.Add(eur)
	assert.Error(t, err)

	_, err = usd.Subtract(eur)
	assert.Error(t, err)

	_, err = usd.LessThan(eur)
	assert.Error(t, err)
}

func TestMoneyPredicates(t *testing.T) {
	assert.True(t, ZeroUSD().IsZero())
	assert.True(t, NewMoneyUSD(decimal.NewFromInt(1)).IsPositive())
	assert.True(t, NewMoneyUSD(decimal.NewFromInt(-1)).IsNegative())

	less, err := NewMoneyUSD(decimal.NewFromInt(5)).LessThan(NewMoneyUSD(decimal.NewFromInt(9)))
	require.NoError(t, err)
	assert.True(t, less)
}

func TestMoneyEquals(t *testing.T) {
	a := NewMoneyUSD(decimal.RequireFromString("10.50"))
	b := NewMoneyUSD(decimal.RequireFromString("10.5"))
	assert.True(t, a.Equals(b))

	c, err := NewMoney(decimal.RequireFromString("10.50"), EUR)
	require.NoError(t, err)
	assert.False(t, a.Equals(c))
}

func TestMoneyRound(t *testing.T) {
	m := NewMoneyUSD(decimal.RequireFromString("3.14159"))
	assert.Equal(t, "3.14", m.Round(2).Amount().String())
}

func TestMoneyMarshalJSON(t *testing.T) {
	m := NewMoneyUSD(decimal.RequireFromString("99.99"))
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "99.99", decoded["amount"])
	assert.Equal(t, "USD", decoded["currency"])
}
