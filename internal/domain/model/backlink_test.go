package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestBacklink_FollowUp(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   BacklinkStatus
		followUp *time.Time
		want     FollowUpState
	}{
		{name: "no date", status: BacklinkStatusProspect, followUp: nil, want: FollowUpNone},
		{name: "past date is overdue", status: BacklinkStatusContacted, followUp: timePtr(now.Add(-time.Hour)), want: FollowUpOverdue},
		{name: "tomorrow is due soon", status: BacklinkStatusContacted, followUp: timePtr(now.Add(24 * time.Hour)), want: FollowUpDueSoon},
		{name: "next week is scheduled", status: BacklinkStatusNegotiating, followUp: timePtr(now.Add(7 * 24 * time.Hour)), want: FollowUpScheduled},
		{name: "placed never needs follow-up", status: BacklinkStatusPlaced, followUp: timePtr(now.Add(-time.Hour)), want: FollowUpNone},
		{name: "rejected never needs follow-up", status: BacklinkStatusRejected, followUp: timePtr(now.Add(time.Hour)), want: FollowUpNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := &Backlink{Status: tt.status, FollowUpAt: tt.followUp}
			assert.Equal(t, tt.want, b.FollowUp(now))
		})
	}
}

func TestNormalizeSourceDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", NormalizeSourceDomain("Example.com"))
	assert.Equal(t, "example.com", NormalizeSourceDomain("blog.example.com"))
	assert.Equal(t, "example.co.uk", NormalizeSourceDomain("https://news.example.co.uk/articles/1"))
	assert.Equal(t, "example.com", NormalizeSourceDomain("  example.com  "))
	assert.Equal(t, "localhost", NormalizeSourceDomain("localhost"))
}

func TestCreateBacklinkRequest_Validate(t *testing.T) {
	t.Parallel()

	req := &CreateBacklinkRequest{ClientID: "c1", SourceDomain: "example.com"}
	assert.NoError(t, req.Validate())

	missing := &CreateBacklinkRequest{ClientID: "c1"}
	assert.Error(t, missing.Validate())

	badStatus := &CreateBacklinkRequest{ClientID: "c1", SourceDomain: "example.com", Status: "launched"}
	assert.Error(t, badStatus.Validate())
}
