package models

import "go.mongodb.org/mongo-driver/bson"

// Field names of a review document.
const (
	FieldServiceID  = "serviceId"
	FieldEmail      = "email"
	FieldReview     = "review"
	FieldReviewTime = "reviewTime"
)

// Review is a user comment tied to a service and an email. Only the fields
// above carry meaning here, anything else is stored as submitted.
type Review bson.M

// ReviewUpdate is the body of PATCH /allReview/:id. Review is nil when the
// body has no review field.
type ReviewUpdate struct {
	Review *string `json:"review"`
}
