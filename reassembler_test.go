package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupID(n int) *int { return &n }

func TestReassembler_SingleFragmentBypassesAccumulation(t *testing.T) {
	var r reassembler
	payload, fillBits, complete, err := r.feed(Sentence{FragmentCount: 1, FragmentIndex: 1, ArmoredPayload: []byte("abc"), FillBits: 2})
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, []byte("abc"), payload)
	assert.Equal(t, 2, fillBits)
}

func TestReassembler_TwoFragmentGroupConcatenatesPayloads(t *testing.T) {
	var r reassembler
	_, _, complete, err := r.feed(Sentence{FragmentCount: 2, FragmentIndex: 1, GroupID: groupID(1), ArmoredPayload: []byte("53`soB800")})
	require.NoError(t, err)
	assert.False(t, complete)

	payload, fillBits, complete, err := r.feed(Sentence{FragmentCount: 2, FragmentIndex: 2, GroupID: groupID(1), ArmoredPayload: []byte("0000000"), FillBits: 2})
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, []byte("53`soB8000000000"), payload)
	assert.Equal(t, 2, fillBits)
}

func TestReassembler_GroupIDMismatchIsFragmentSequenceError(t *testing.T) {
	var r reassembler
	_, _, _, err := r.feed(Sentence{FragmentCount: 2, FragmentIndex: 1, GroupID: groupID(1), ArmoredPayload: []byte("a")})
	require.NoError(t, err)

	_, _, _, err = r.feed(Sentence{FragmentCount: 2, FragmentIndex: 2, GroupID: groupID(2), ArmoredPayload: []byte("b")})
	assert.ErrorIs(t, err, ErrFragmentSequence)
}

func TestReassembler_SkippedIndexIsFragmentSequenceError(t *testing.T) {
	var r reassembler
	_, _, _, err := r.feed(Sentence{FragmentCount: 3, FragmentIndex: 1, GroupID: groupID(1), ArmoredPayload: []byte("a")})
	require.NoError(t, err)

	_, _, _, err = r.feed(Sentence{FragmentCount: 3, FragmentIndex: 3, GroupID: groupID(1), ArmoredPayload: []byte("c")})
	assert.ErrorIs(t, err, ErrFragmentSequence)
}

func TestReassembler_NewIndexOneMidSequenceIsFragmentSequenceError(t *testing.T) {
	var r reassembler
	_, _, _, err := r.feed(Sentence{FragmentCount: 3, FragmentIndex: 1, GroupID: groupID(1), ArmoredPayload: []byte("a")})
	require.NoError(t, err)

	_, _, _, err = r.feed(Sentence{FragmentCount: 3, FragmentIndex: 1, GroupID: groupID(2), ArmoredPayload: []byte("x")})
	assert.ErrorIs(t, err, ErrFragmentSequence)
}

func TestReassembler_IndexWithNoSequenceInProgressIsError(t *testing.T) {
	var r reassembler
	_, _, _, err := r.feed(Sentence{FragmentCount: 2, FragmentIndex: 2, GroupID: groupID(1), ArmoredPayload: []byte("b")})
	assert.ErrorIs(t, err, ErrFragmentSequence)
}
