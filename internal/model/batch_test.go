package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to BatchStatus
		ok       bool
	}{
		{BatchPlanned, BatchOngoing, true},
		{BatchPlanned, BatchCanceled, true},
		{BatchPlanned, BatchFinished, false},
		{BatchOngoing, BatchFinished, true},
		{BatchOngoing, BatchCanceled, true},
		{BatchOngoing, BatchPlanned, false},
		{BatchFinished, BatchOngoing, false},
		{BatchFinished, BatchCanceled, false},
		{BatchCanceled, BatchPlanned, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestParticipantStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to ParticipantStatus
		ok       bool
	}{
		{ParticipantRegistered, ParticipantAttended, true},
		{ParticipantRegistered, ParticipantPassed, false},
		{ParticipantRegistered, ParticipantFailed, false},
		{ParticipantAttended, ParticipantPassed, true},
		{ParticipantAttended, ParticipantFailed, true},
		{ParticipantAttended, ParticipantRegistered, false},
		{ParticipantPassed, ParticipantFailed, false},
		{ParticipantFailed, ParticipantAttended, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidBatchQuota(t *testing.T) {
	assert.True(t, ValidBatchQuota(nil), "quota opsional")
	assert.True(t, ValidBatchQuota(intp(1)))
	assert.True(t, ValidBatchQuota(intp(250)))
	assert.False(t, ValidBatchQuota(intp(0)))
	assert.False(t, ValidBatchQuota(intp(251)))
	assert.False(t, ValidBatchQuota(intp(-5)))
}

func TestBatchStatus_Valid(t *testing.T) {
	for _, s := range []BatchStatus{BatchPlanned, BatchOngoing, BatchFinished, BatchCanceled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BatchStatus("DRAFT").Valid())
}
