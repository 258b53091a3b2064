package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "b-1",
		FacilityID:  "fac-1",
		UnitID:      "unit-12",
		UserID:      "user-7",
		BookingDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   types.MustTimeString("10:00"),
		EndTime:     types.MustTimeString("11:00"),
		Status:      domain.StatusPending,
	}
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "facility.bookings", 0)

	err := p.Publish(context.Background(), NewBookingEvent(BookingCreated, testBooking(), "user-7"))
	require.NoError(t, err)

	require.Len(t, ch.sent, 1)
	sent := ch.sent[0]
	assert.Equal(t, "facility.bookings", sent.exchange)
	assert.Equal(t, "booking.created", sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.NotEmpty(t, sent.msg.MessageId)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(sent.msg.Body, &body))
	assert.Equal(t, "b-1", body["bookingId"])
	assert.Equal(t, "2024-01-15", body["bookingDate"])
	assert.Equal(t, "10:00", body["startTime"])
	assert.Equal(t, "pending", body["status"])
	assert.NotContains(t, body, "cancellationReason")
}

func TestPublisher_Publish_Error(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	p := newPublisher(ch, "facility.bookings", time.Second)

	err := p.Publish(context.Background(), NewBookingEvent(BookingApproved, testBooking(), "manager-1"))

	assert.ErrorIs(t, err, ErrPublish)
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "facility.bookings", time.Second)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), BookingEvent{}))
	assert.NoError(t, p.Close())
}
