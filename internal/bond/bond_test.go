package bond_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wyfcoding/treasurydesk/internal/bond"
)

func TestIsZeroOnDefaultConstruction(t *testing.T) {
	var b bond.Bond
	assert.True(t, b.IsZero())
}

func TestIsZeroFalseOnceProductIDSet(t *testing.T) {
	b := bond.Bond{ProductID: "91282CFX4"}
	assert.False(t, b.IsZero())
}
