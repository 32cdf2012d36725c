package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadStatus tracks the lifecycle of an object in external storage.
type UploadStatus string

const (
	UploadPending  UploadStatus = "pending"  // Presigned URL issued, not confirmed
	UploadComplete UploadStatus = "complete" // Client confirmed the PUT
)

// Upload records an object (branding logo) placed in S3 on behalf of a
// trainer. The object itself lives in the bucket; this is only metadata.
type Upload struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID   primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	ObjectKey   string             `bson:"objectKey" json:"objectKey"`
	ContentType string             `bson:"contentType" json:"contentType"`
	Status      UploadStatus       `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
