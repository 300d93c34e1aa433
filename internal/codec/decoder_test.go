package codec

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/internal/metrics"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const prettyInput = `type,       client, tx, amount
deposit,         1,  1,    1.0
deposit,         2,  2,    2.0
deposit,         1,  3,    2.0
withdrawal,      1,  4,    1.5
withdrawal,      2,  5,    3.0
dispute,         1,  1,
`

func TestActionReader_Pretty(t *testing.T) {
	reader := NewActionReader(strings.NewReader(prettyInput), DecodeFail)

	actions := slices.Collect(reader.Actions(context.Background()))
	require.NoError(t, reader.Err())
	require.Len(t, actions, 6)

	first := actions[0]
	assert.Equal(t, ledger.ActionDeposit, first.Kind)
	assert.Equal(t, ledger.ClientID(1), first.ClientID)
	assert.Equal(t, ledger.TransactionID(1), first.TransactionID)
	require.NotNil(t, first.Amount)
	assert.Equal(t, "1", first.Amount.String())

	last := actions[5]
	assert.Equal(t, ledger.ActionDispute, last.Kind)
	assert.Nil(t, last.Amount)
	assert.Equal(t, 6, reader.Decoded())
}

func TestActionReader_DenseAndReorderedColumns(t *testing.T) {
	input := "tx,amount,client,type\n7,0.1234,3,DEPOSIT\n8,,3,Resolve\n"
	reader := NewActionReader(strings.NewReader(input), DecodeFail)

	actions := slices.Collect(reader.Actions(context.Background()))
	require.NoError(t, reader.Err())
	require.Len(t, actions, 2)
	assert.Equal(t, ledger.ActionDeposit, actions[0].Kind)
	assert.Equal(t, ledger.ClientID(3), actions[0].ClientID)
	assert.Equal(t, ledger.TransactionID(7), actions[0].TransactionID)
	assert.Equal(t, "0.1234", actions[0].Amount.String())
	assert.Equal(t, ledger.ActionResolve, actions[1].Kind)
	assert.Nil(t, actions[1].Amount)
}

const badInput = `type,client,tx,amount
deposit,1,1,1.0
transfer,1,2,1.0
deposit,70000,3,1.0
deposit,1,4,abc
withdrawal,1,5,0.5
`

func TestActionReader_IgnorePolicy(t *testing.T) {
	rec := metrics.NewMemoryRecorder()
	reader := NewActionReader(strings.NewReader(badInput), DecodeIgnore, WithReaderMetrics(rec))

	actions := slices.Collect(reader.Actions(context.Background()))
	require.NoError(t, reader.Err())
	assert.Len(t, actions, 2)
	assert.Empty(t, reader.Rejected())
	assert.Equal(t, 3, reader.Skipped())
	assert.Equal(t, int64(3), rec.DecodeRejected())
}

func TestActionReader_LogPolicy(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reader := NewActionReader(strings.NewReader(badInput), DecodeLog, WithReaderLogger(logger.NewWithCore(core)))

	actions := slices.Collect(reader.Actions(context.Background()))
	require.NoError(t, reader.Err())
	assert.Len(t, actions, 2)

	rejected := reader.Rejected()
	require.Len(t, rejected, 3)
	assert.Equal(t, 3, rejected[0].Line)
	assert.Equal(t, 4, rejected[1].Line)
	assert.Equal(t, 5, rejected[2].Line)
	assert.Equal(t, 3, logs.Len())
}

func TestActionReader_LinesFollowTheFile(t *testing.T) {
	input := "type,client,tx,amount,note\n" +
		"deposit,1,1,1,\"two\nlines\"\n" +
		"bogus,1,2,1,x\n" +
		"deposit,1,3,1,a\"b\n" +
		"deposit,1,4,2,ok\n"
	reader := NewActionReader(strings.NewReader(input), DecodeLog)

	actions := slices.Collect(reader.Actions(context.Background()))
	require.NoError(t, reader.Err())
	require.Len(t, actions, 2)
	assert.Equal(t, ledger.TransactionID(4), actions[1].TransactionID)

	rejected := reader.Rejected()
	require.Len(t, rejected, 2)
	assert.Equal(t, 4, rejected[0].Line)
	assert.Equal(t, 5, rejected[1].Line)
}

func TestActionReader_FailPolicy(t *testing.T) {
	reader := NewActionReader(strings.NewReader(badInput), DecodeFail)

	actions := slices.Collect(reader.Actions(context.Background()))
	assert.Len(t, actions, 1)
	assert.ErrorIs(t, reader.Err(), ErrInvalidRecord)
	assert.Contains(t, reader.Err().Error(), "line 3")
}

func TestActionReader_MissingHeaderColumn(t *testing.T) {
	reader := NewActionReader(strings.NewReader("type,client,amount\ndeposit,1,1\n"), DecodeIgnore)

	actions := slices.Collect(reader.Actions(context.Background()))
	assert.Empty(t, actions)
	assert.ErrorIs(t, reader.Err(), ErrInvalidHeader)
}

func TestActionReader_EmptyInput(t *testing.T) {
	reader := NewActionReader(strings.NewReader(""), DecodeIgnore)

	actions := slices.Collect(reader.Actions(context.Background()))
	assert.Empty(t, actions)
	assert.ErrorIs(t, reader.Err(), ErrInvalidHeader)
}

func TestActionReader_StopEarly(t *testing.T) {
	reader := NewActionReader(strings.NewReader(prettyInput), DecodeIgnore)

	for range reader.Actions(context.Background()) {
		break
	}
	assert.Equal(t, 1, reader.Decoded())
}

func TestParseDecodePolicy(t *testing.T) {
	cases := map[string]DecodePolicy{
		"":       DecodeIgnore,
		"ignore": DecodeIgnore,
		"Log":    DecodeLog,
		"fail":   DecodeFail,
		"crash":  DecodeFail,
	}
	for in, want := range cases {
		got, err := ParseDecodePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDecodePolicy("panic")
	assert.Error(t, err)
}
