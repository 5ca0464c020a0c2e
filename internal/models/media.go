package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceMedia struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceID   string             `bson:"serviceId" json:"serviceId"`
	URL         string             `bson:"url" json:"url"`
	ContentType string             `bson:"contentType" json:"contentType"`
	Size        int64              `bson:"size" json:"size"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
