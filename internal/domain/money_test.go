package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

func TestCentsFromFloat(t *testing.T) {
	assert.Equal(t, domain.Cents(5000), domain.CentsFromFloat(50))
	assert.Equal(t, domain.Cents(1999), domain.CentsFromFloat(19.99))
	assert.Equal(t, domain.Cents(50), domain.CentsFromFloat(0.5))
}

func TestCents_Percent(t *testing.T) {
	assert.Equal(t, domain.Cents(1000), domain.Cents(10000).Percent(10))
	// 10% от 0.15 = 0.015 -> 0.02
	assert.Equal(t, domain.Cents(2), domain.Cents(15).Percent(10))
	assert.Equal(t, domain.Cents(0), domain.Cents(4).Percent(10))
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "90.00", domain.Cents(9000).String())
	assert.Equal(t, "-0.05", domain.Cents(-5).String())
}
