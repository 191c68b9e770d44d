// File: database/repository/appointment/appointmentMongoCrud.go
package appointmentRepo

import (
	"fmt"
	"time"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByBookingID retrieves an appointment by its booking id.
func (r *MongoAppointmentRepo) GetByBookingID(bookingID string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", bookingID, err)
	}
	return &appt, nil
}

// FindByReference looks up the appointment whose stored slip reference
// equals refNbr. A nil, nil return means the reference is unused.
func (r *MongoAppointmentRepo) FindByReference(refNbr string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	filter := bson.M{"payment_verification.decoded_string": refNbr}
	err := r.coll.FindOne(ctx, filter).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up slip reference: %w", err)
	}
	return &appt, nil
}

// MarkVerified writes the payment verification record onto the appointment.
// The filter only matches a document without an existing verification, so a
// second write for the same booking cannot succeed; the unique index on the
// decoded reference rejects a concurrent write of the same reference to a
// different booking.
func (r *MongoAppointmentRepo) MarkVerified(bookingID string, pv models.PaymentVerification) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"booking_id":           bookingID,
		"payment_verification": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"payment_verification": pv,
		"updated_at":           time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateReference
	}
	if err == mongo.ErrNoDocuments {
		// Distinguish a missing booking from one already verified.
		if _, getErr := r.GetByBookingID(bookingID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyVerified
	}
	return nil, fmt.Errorf("failed to mark appointment %s verified: %w", bookingID, err)
}
