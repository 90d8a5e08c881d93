package writelog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_NilClientIsNoop(t *testing.T) {
	ctx := context.Background()
	l := New(nil)

	l.Record(ctx, "r1", "steps.insert", errors.New("boom"))
	l.Clear(ctx, "r1")

	entries, err := l.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)

	n, err := l.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLedger_NilReceiver(t *testing.T) {
	var l *Ledger
	assert.NotPanics(t, func() {
		l.Record(context.Background(), "r1", "ingredients.insert", nil)
		l.Clear(context.Background(), "r1")
	})
	entries, err := l.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
