package models

import "go.mongodb.org/mongo-driver/bson"

// Service is a travel offering. Apart from _id its fields are whatever the
// caller submitted (name, description, price, ...).
type Service bson.M
