package offer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfferStatusTransitions(t *testing.T) {
	tests := []struct {
		from OfferStatus
		to   OfferStatus
		ok   bool
	}{
		{StatusActive, StatusPaused, true},
		{StatusActive, StatusClosed, true},
		{StatusActive, StatusFilled, true},
		{StatusPaused, StatusActive, true},
		{StatusPaused, StatusClosed, true},
		{StatusPaused, StatusFilled, false},
		{StatusClosed, StatusActive, false},
		{StatusClosed, StatusPaused, false},
		{StatusFilled, StatusActive, false},
		{StatusFilled, StatusClosed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestOfferTypeValid(t *testing.T) {
	assert.True(t, TypeRecruitment.Valid())
	assert.True(t, TypeReplacement.Valid())
	assert.False(t, OfferType("trial").Valid())
}

func TestFilterOfferDetailIncludesContact(t *testing.T) {
	o := &Offer{Title: "Open tryouts"}
	o.ID = 3
	o.Club.ID = 9
	o.Club.ClubName = "FC Test"
	o.Club.ContactEmail = "contact@fctest.example"

	detail := filterOfferDetail(o)
	assert.Equal(t, "contact@fctest.example", detail.Club.ContactEmail)
	assert.Equal(t, uint(9), detail.Club.ID)

	// The list projection never carries contact details.
	item := FilterOfferRecord(o)
	assert.Equal(t, "FC Test", item.Club.ClubName)
}
